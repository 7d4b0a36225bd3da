package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"tasklist/internal/client"
)

// Fetches the task list once and prints the count, with an interactive
// retry prompt when the service is unreachable.
func main() {
	addr := flag.String("addr", "http://localhost:8080", "task service base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	cacheTTL := flag.Duration("cache-ttl", 30*time.Second, "list cache freshness window, 0 disables")
	flag.Parse()

	c := client.New(*addr,
		client.WithTimeout(*timeout),
		client.WithCacheTTL(*cacheTTL),
	)
	summary := client.NewSummary(c, os.Stdout)

	stdin := bufio.NewReader(os.Stdin)
	summary.Render(context.Background())

	for summary.Failed() {
		fmt.Print("retry? [y/N] ")
		line, err := stdin.ReadString('\n')
		if err != nil || !strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y") {
			os.Exit(1)
		}
		summary.Retry(context.Background())
	}
}
