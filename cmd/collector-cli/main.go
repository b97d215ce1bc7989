package main

import (
	"seoulopendata/cmd/collector-cli/cmd"
	"seoulopendata/lib/osutil"
)

func main() {
	cmd.Execute(osutil.SignalContext())
}
