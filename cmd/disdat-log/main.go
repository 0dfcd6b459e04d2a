package main

import "github.com/oshokin/disdat/cmd/disdat-log/cmd"

func main() {
	cmd.Execute()
}
