package main

import "github.com/jsphweid/harmonfunc/cmd"

func main() {
	cmd.Execute()
}
