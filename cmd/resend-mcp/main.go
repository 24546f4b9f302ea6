// Resend MCP server exposes the Resend email API through Model Context Protocol.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resend-mcp/internal/config"
	"resend-mcp/internal/rsvc"
	"resend-mcp/internal/tool"
)

func main() {
	keyParam := flag.String("key", "", "Resend API key (fallback: "+config.EnvAPIKey+")")
	senderParam := flag.String("sender", "", "Default sender address (fallback: "+config.EnvSender+")")
	replyToParam := flag.String("reply-to", "", "Comma-separated default reply-to addresses (fallback: "+config.EnvReplyTo+")")
	envFileParam := flag.String("env-file", "", "Path to env file")
	timeoutParam := flag.Duration("timeout", 0, "Per-call upstream timeout, 0 to wait indefinitely")
	httpAddr := flag.String("http-addr", "", "HTTP server listen addr, empty to disable")
	enableStdio := flag.Bool("stdio", true, "Enable stdio transport for MCP (disables stdout logging)")
	logFile := flag.String("log-file", "", "Path to log file (only used with stdio transport, otherwise logs to stdout)")

	flag.Parse()

	persistLogs := setupLogger(enableStdio, logFile)
	defer persistLogs()

	if envFileParam != nil && *envFileParam != "" {
		if err := godotenv.Load(*envFileParam); err != nil {
			panic(fmt.Errorf("godotenv.Load failed: %w", err))
		}
	}

	defaults, err := config.Load(*keyParam, *senderParam, *replyToParam)
	if err != nil {
		panic(fmt.Errorf("config.Load failed: %w", err))
	}

	resendSvc := rsvc.New(defaults.APIKey, *timeoutParam)
	srv := tool.NewServer(resendSvc, defaults)

	shutdown := make(chan os.Signal, 1)

	signal.Notify(shutdown, syscall.SIGTERM, syscall.SIGINT)

	var errHTTPCh <-chan error
	if *httpAddr != "" {
		var stopHTTP func()
		stopHTTP, errHTTPCh = serveHTTP(srv, mustListen(httpAddr))
		defer stopHTTP()
	}

	var errStdioCh <-chan error
	if *enableStdio {
		var stopStdio func()
		stopStdio, errStdioCh = serveStdio(srv)
		defer stopStdio()
	}

	if errHTTPCh == nil && errStdioCh == nil {
		panic("at least one of -stdio or -http-addr must be enabled")
	}

	select {
	case err := <-errHTTPCh:
		log.Println("Error http server", err)
	case err := <-errStdioCh:
		log.Println("Error stdio", err)
	case <-shutdown:
		log.Println("Shutdown signal received")
	}
}

func serveStdio(srv *mcp.Server) (func(), <-chan error) {
	errStdioCh := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer close(errStdioCh)
		log.Println("Starting stdio transport")

		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
			err = fmt.Errorf("srv.Run failed: %w", err)
			errStdioCh <- err
		}
	}()

	return func() {
		cancel()

		<-errStdioCh
		log.Println("Stdio transport stopped")
	}, errStdioCh
}

func serveHTTP(srv *mcp.Server, ln net.Listener) (func(), <-chan error) {
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server { return srv }, nil))

	httpSrv := &http.Server{
		Handler: mux,
	}

	errHTTPCh := make(chan error, 1)
	go func() {
		defer close(errHTTPCh)

		log.Println("Starting http server on", ln.Addr().String())

		err := httpSrv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("httpSrv.Serve failed: %w", err)
			log.Println(err)
			errHTTPCh <- err
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(ctx); err != nil {
			log.Println(fmt.Errorf("httpSrv.Shutdown failed: %w", err))
		}

		<-errHTTPCh
		log.Println("HTTP server stopped")
	}, errHTTPCh
}

func mustListen(httpAddr *string) net.Listener {
	ln, err := net.Listen("tcp", *httpAddr)
	if err != nil {
		panic(fmt.Errorf("net.Listen failed: %w", err))
	}

	return ln
}

func setupLogger(enableStdio *bool, logFile *string) func() {
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		log.SetOutput(f)

		return func() {
			if err := f.Close(); err != nil {
				log.Println(fmt.Errorf("f.Close failed: %w", err))
			}
		}
	}

	if *enableStdio {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(os.Stdout)
	}

	return func() {}
}
