// Command client is a small command-line client of the note keeper API.
//
// Usage:
//
//	client [-a address] [-timeout 10s] signup <email> <password>
//	client [-a address] login <email> <password>
//	client [-a address] hello
//	client [-a address] logout
//	client [-a address] note-create <title> <body>
//	client [-a address] note-get <id>
//	client [-a address] note-delete <id>
//
// Commands other than signup and login read the bearer token from the
// NOTE_KEEPER_TOKEN environment variable.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const tokenEnv = "NOTE_KEEPER_TOKEN"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage: client [-a address] [-timeout d] signup|login|hello|logout|note-create|note-get|note-delete [args]")

func main() {
	log := logger.NewConsoleLogger("go-note-keeper-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPNoteKeeperAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}
	api.SetToken(os.Getenv(tokenEnv))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out, err := run(ctx, api, args)
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
	if out != "" {
		fmt.Println(out)
	}
}

// run executes one command and returns what should be printed to stdout.
func run(ctx context.Context, api adapter.NoteKeeperAPI, args []string) (string, error) {
	if len(args) == 0 {
		return "", errUsage
	}

	cmd, params := args[0], args[1:]
	switch {
	case cmd == "version" && len(params) == 0:
		return fmt.Sprintf("version: %s, date: %s, commit: %s", orNA(buildVersion), orNA(buildDate), orNA(buildCommit)), nil
	case cmd == "signup" && len(params) == 2:
		return api.Signup(ctx, models.Credentials{Email: params[0], Password: params[1]})
	case cmd == "login" && len(params) == 2:
		return api.Login(ctx, models.Credentials{Email: params[0], Password: params[1]})
	case cmd == "hello" && len(params) == 0:
		return api.Hello(ctx)
	case cmd == "logout" && len(params) == 0:
		return "", api.Logout(ctx)
	case cmd == "note-create" && len(params) == 2:
		note, err := api.CreateNote(ctx, params[0], params[1])
		if err != nil {
			return "", err
		}
		return note.ID, nil
	case cmd == "note-get" && len(params) == 1:
		note, err := api.GetNote(ctx, params[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s\n%s\n%s", note.Title, note.CreatedAt.Format("2006-01-02 15:04:05"), note.Body), nil
	case cmd == "note-delete" && len(params) == 1:
		return "", api.DeleteNote(ctx, params[0])
	default:
		return "", errUsage
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
