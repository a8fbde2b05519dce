package main

import "github.com/senna-lang/schedtrack/cmd"

func main() {
	cmd.Execute()
}
