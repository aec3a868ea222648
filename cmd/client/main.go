package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/multilang/concept-memo/internal/client"
	"github.com/multilang/concept-memo/models"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

const usageText = `Usage: concept-memo-client [flags] <command> [args]

Commands:
  register <username>            create a session and store its token
  verify                         check and renew the stored token
  logout                         revoke the stored token
  list                           list all concepts with their words
  search <keyword>               search concepts by keyword
  get <concept-id>               show one concept
  add-concept <name> [notes]     create a concept
  add-word <concept-id> <word> <language> [ipa] [nuance]
                                 attach a word to a concept
  delete-concept <concept-id>    delete a concept and its words

Flags:
  -a string    server address (default "http://localhost:8080")
  -version     print build info and exit
`

func main() {
	address := flag.String("a", "http://localhost:8080", "server address")
	showVersion := flag.Bool("version", false, "print build info and exit")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usageText) }
	flag.Parse()

	if *showVersion {
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cli := client.New(client.Config{BaseURL: *address})
	if token, err := loadToken(); err == nil {
		cli.SetToken(token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, cli, args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cli *client.MemoClient, command string, args []string) error {
	switch command {
	case "register":
		if len(args) != 1 {
			return fmt.Errorf("usage: register <username>")
		}
		auth, err := cli.Register(ctx, args[0])
		if err != nil {
			return err
		}
		if err = saveToken(auth.Token); err != nil {
			return err
		}
		fmt.Printf("registered as %q, token stored\n", auth.Username)
		return nil

	case "verify":
		auth, err := cli.Verify(ctx, cli.Token())
		if err != nil {
			return err
		}
		if err = saveToken(auth.Token); err != nil {
			return err
		}
		fmt.Printf("token valid, session for %q renewed\n", auth.Username)
		return nil

	case "logout":
		if err := cli.Logout(ctx); err != nil {
			return err
		}
		if err := os.Remove(tokenPath()); err != nil && !os.IsNotExist(err) {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "list":
		concepts, err := cli.ListConcepts(ctx, "")
		if err != nil {
			return err
		}
		printConcepts(concepts)
		return nil

	case "search":
		if len(args) != 1 {
			return fmt.Errorf("usage: search <keyword>")
		}
		concepts, err := cli.ListConcepts(ctx, args[0])
		if err != nil {
			return err
		}
		printConcepts(concepts)
		return nil

	case "get":
		id, err := parseID(args, 0, "concept-id")
		if err != nil {
			return err
		}
		concept, err := cli.GetConcept(ctx, id)
		if err != nil {
			return err
		}
		printConcepts([]models.Concept{concept})
		return nil

	case "add-concept":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("usage: add-concept <name> [notes]")
		}
		notes := ""
		if len(args) == 2 {
			notes = args[1]
		}
		concept, err := cli.CreateConcept(ctx, args[0], notes)
		if err != nil {
			return err
		}
		fmt.Printf("created concept %d %q\n", concept.ConceptID, concept.Name)
		return nil

	case "add-word":
		if len(args) < 3 || len(args) > 5 {
			return fmt.Errorf("usage: add-word <concept-id> <word> <language> [ipa] [nuance]")
		}
		id, err := parseID(args, 0, "concept-id")
		if err != nil {
			return err
		}
		req := models.WordRequest{Word: args[1], Language: args[2]}
		if len(args) > 3 {
			req.IPA = args[3]
		}
		if len(args) > 4 {
			req.Nuance = args[4]
		}
		word, err := cli.AddWord(ctx, id, req)
		if err != nil {
			return err
		}
		fmt.Printf("added word %d %q to concept %d\n", word.WordID, word.Word, id)
		return nil

	case "delete-concept":
		id, err := parseID(args, 0, "concept-id")
		if err != nil {
			return err
		}
		if err = cli.DeleteConcept(ctx, id); err != nil {
			return err
		}
		fmt.Printf("deleted concept %d\n", id)
		return nil

	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func parseID(args []string, idx int, name string) (int64, error) {
	if len(args) <= idx {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	id, err := strconv.ParseInt(args[idx], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, args[idx])
	}
	return id, nil
}

func printConcepts(concepts []models.Concept) {
	if len(concepts) == 0 {
		fmt.Println("no concepts")
		return
	}
	for _, c := range concepts {
		fmt.Printf("[%d] %s", c.ConceptID, c.Name)
		if c.Notes != "" {
			fmt.Printf(" - %s", c.Notes)
		}
		fmt.Println()
		for _, w := range c.Words {
			line := fmt.Sprintf("    (%d) %s [%s]", w.WordID, w.Word, w.Language)
			if w.IPA != "" {
				line += " /" + w.IPA + "/"
			}
			if w.Nuance != "" {
				line += " - " + w.Nuance
			}
			fmt.Println(line)
		}
	}
}

func tokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".concept-memo-token")
}

func loadToken() (string, error) {
	raw, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func saveToken(token string) error {
	return os.WriteFile(tokenPath(), []byte(token), 0o600)
}
