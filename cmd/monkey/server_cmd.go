package main

import (
	"bufio"
	"fmt"
	"log"
	"net"

	"github.com/google/uuid"
	"github.com/monkeylang/monkey/config"
	"github.com/monkeylang/monkey/object"
	"github.com/monkeylang/monkey/repl"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server [addr]",
		Short: "Serve one REPL session per TCP connection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := ""
			if len(args) == 1 {
				addr = args[0]
			}
			return runServer(addr)
		},
	}
}

func runServer(addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return oops.Code("server-config-load-failed").Wrapf(err, "loading config")
	}
	if addr == "" {
		addr = cfg.ServerAddr
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return oops.Code("server-listen-failed").With("addr", addr).Wrapf(err, "starting server")
	}
	defer listener.Close()

	log.Printf("monkey server listening on %s", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("accept error: %v", err)
			continue
		}
		go handleConnection(conn)
	}
}

// handleConnection runs one REPL session per TCP connection, each tagged
// with its own session id so concurrent connections are distinguishable in
// the server log.
func handleConnection(conn net.Conn) {
	defer conn.Close()

	sessionID := uuid.New()
	log.Printf("session %s: connected from %s", sessionID, conn.RemoteAddr())
	defer log.Printf("session %s: disconnected", sessionID)

	fmt.Fprintf(conn, "Hello! This is the Monkey programming language!\n")
	fmt.Fprintf(conn, "Feel free to type in commands\n")

	env := object.NewEnvironment()
	env.SetWriter(conn)
	scanner := bufio.NewScanner(conn)

	for {
		fmt.Fprint(conn, ">> ")
		if !scanner.Scan() {
			return
		}

		output, _ := repl.ExecuteLine(scanner.Text(), env)
		fmt.Fprint(conn, output)
	}
}
