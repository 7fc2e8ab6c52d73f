// Command interviewer runs a field interview against a running observatory
// backend from the terminal. It exercises the same streaming client the
// frontend uses.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/youthfutures/observatory/pkg/interview"
)

func main() {
	log.SetFlags(0)

	server := flag.String("server", "http://localhost:8080", "observatory backend base URL")
	population := flag.String("population", "", "population id, e.g. moderately-insecure")
	scenario := flag.String("scenario", "", "scenario id, e.g. drift-economy")
	flag.Parse()

	if *population == "" || *scenario == "" {
		flag.Usage()
		log.Fatal("both -population and -scenario are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conv := interview.NewConversation(*server, *population, *scenario)

	fmt.Printf("Interviewing %s in %q. Type your questions; Ctrl-C or an empty line ends the interview.\n\n", *population, *scenario)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if conv.AtLimit() {
			fmt.Println("\nInterview limit reached. Start the tool again for a new interview.")
			return
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			break
		}

		var lastLen int
		err := conv.Send(ctx, input, func(assistant string) {
			// Print only the newly arrived suffix so deltas appear as
			// live typing.
			fmt.Print(assistant[lastLen:])
			lastLen = len(assistant)
		})
		fmt.Println()
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled):
			fmt.Println("(interview cancelled)")
			return
		default:
			log.Printf("turn failed: %v", err)
		}
		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin error: %v", err)
	}
}
