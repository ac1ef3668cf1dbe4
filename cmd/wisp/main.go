/*
File    : wisp/cmd/wisp/main.go
*/

// Command wisp is the CLI host for the Wisp interpreter: zero arguments
// start an interactive prompt, one argument runs a file and selects an
// exit code from the two error flags, and more than one argument prints
// usage and exits 64. It also offers a `serve <port>` convenience mode
// that hands each TCP connection its own REPL session.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/wisplang/wisp/repl"
	"github.com/wisplang/wisp/runner"
)

const version = "v0.1.0"

const banner = `
 __      __ _
 \ \    / /(_)
  \ \/\/ /  _  ___ ____
   \    /  | |/ _ \  _ \
    \/\/   |_|\___/_/ \_\
`

const line = "----------------------------------------------------------------"
const prompt = "wisp> "

var (
	cyanColor = color.New(color.FgCyan)
	redColor  = color.New(color.FgRed)
)

func main() {
	switch len(os.Args) {
	case 1:
		repl.New(banner, version, line, prompt).Start(os.Stdin, os.Stdout)
		return
	case 2:
		switch os.Args[1] {
		case "--help", "-h":
			printHelp()
			return
		case "--version", "-v":
			cyanColor.Printf("wisp %s\n", version)
			return
		default:
			runFile(os.Args[1])
			return
		}
	case 3:
		if os.Args[1] == "serve" {
			serve(os.Args[2])
			return
		}
		fallthrough
	default:
		fmt.Fprintln(os.Stderr, "usage: wisp [script]")
		os.Exit(64)
	}
}

// runFile executes one script and exits with the code matching its
// outcome.
func runFile(path string) {
	result := runner.RunFile(path, os.Stdout)
	os.Exit(result.ExitCode())
}

// serve starts a REPL-over-TCP listener: one goroutine per connection, each
// with its own interpreter instance, so concurrent clients cannot observe
// each other's bindings.
func serve(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("wisp REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "accept failed: %v\n", err)
			continue
		}
		go func() {
			defer conn.Close()
			repl.New(banner, version, line, prompt).Start(conn, conn)
		}()
	}
}

func printHelp() {
	cyanColor.Println("Wisp - a small interpreted scripting language")
	cyanColor.Println("")
	cyanColor.Println("usage:")
	fmt.Println("  wisp                  start the interactive REPL")
	fmt.Println("  wisp <path>           run a Wisp script")
	fmt.Println("  wisp serve <port>     start a REPL server on the given port")
	fmt.Println("  wisp --help           show this message")
	fmt.Println("  wisp --version        show the interpreter version")
}
