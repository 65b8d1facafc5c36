package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

// klogFlags holds klog's settings so --verbose can raise the level later.
var klogFlags = flag.NewFlagSet("klog", flag.ContinueOnError)

func main() {
	klog.InitFlags(klogFlags)
	_ = klogFlags.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	err := rootCmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
