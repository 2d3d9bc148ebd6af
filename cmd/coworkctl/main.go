package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"coworkctl/internal/booking"
	"coworkctl/internal/client"
	"coworkctl/internal/config"
	"coworkctl/internal/inventory"
	"coworkctl/internal/lib/logger/handlers/slogpretty"
	"coworkctl/internal/lib/logger/sl"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Debug("Debug messages are enabled")

	var tokens client.TokenSource
	switch {
	case cfg.Auth.Token != "":
		tokens = client.StaticToken(cfg.Auth.Token)
	case cfg.Auth.TokenFile != "":
		tokens = client.FileTokenSource{Path: cfg.Auth.TokenFile}
	default:
		tokens = client.StaticToken("")
	}

	api := client.New(cfg.API.BaseURL, cfg.API.Timeout, tokens, log)
	spaces := inventory.New(api, log)
	bookings := booking.New(api, spaces, log)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	if err := run(ctx, os.Args[1], os.Args[2:], log, spaces, bookings); err != nil {
		log.Error("command failed", sl.Err(err))
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	command string,
	args []string,
	log *slog.Logger,
	spaces *inventory.Service,
	bookings *booking.Service,
) error {
	switch command {
	case "coworkings":
		return listCoworkings(ctx, spaces)
	case "floors":
		return listFloors(ctx, args, spaces)
	case "spaces":
		return listSpaces(ctx, args, spaces)
	case "bookings":
		return listBookings(ctx, log, bookings)
	case "book":
		return createBooking(ctx, args, bookings)
	case "cancel":
		return cancelBooking(ctx, args, bookings)
	case "visited":
		return markVisited(ctx, args, bookings)
	case "qr":
		return printQR(args)
	default:
		usage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func listCoworkings(ctx context.Context, spaces *inventory.Service) error {
	coworkings, err := spaces.Coworkings(ctx)
	if err != nil {
		return err
	}

	for _, c := range coworkings {
		hours := "open hours unknown"
		if c.OpenFrom != nil && c.OpenTill != nil {
			hours = fmt.Sprintf("open %02d:00-%02d:00", *c.OpenFrom, *c.OpenTill)
		}
		fmt.Printf("%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Address, hours)
	}

	return nil
}

func listFloors(ctx context.Context, args []string, spaces *inventory.Service) error {
	fs := flag.NewFlagSet("floors", flag.ExitOnError)
	coworkingID := fs.String("coworking", "", "coworking id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	floors, err := spaces.Floors(ctx, *coworkingID)
	if err != nil {
		return err
	}

	for _, f := range floors {
		fmt.Printf("%s\t%s\t%d places\n", f.ID, f.Name, len(f.Places))
	}

	return nil
}

func listSpaces(ctx context.Context, args []string, spaces *inventory.Service) error {
	fs := flag.NewFlagSet("spaces", flag.ExitOnError)
	coworkingID := fs.String("coworking", "", "coworking id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	all, err := spaces.Spaces(ctx, *coworkingID)
	if err != nil {
		return err
	}

	for _, s := range all {
		fmt.Printf("%s\tfloor %d\t%s\t%s\n", s.ID, s.Floor, s.Name, s.Description)
	}

	return nil
}

func listBookings(ctx context.Context, log *slog.Logger, bookings *booking.Service) error {
	active, err := bookings.ListActive(ctx)
	if err != nil {
		// Read path degrades gracefully: show nothing rather than fail.
		log.Error("failed to fetch bookings", sl.Err(err))
		return nil
	}

	for _, b := range active {
		fmt.Printf("%s\tspace %s\t%s - %s\t%s\n",
			b.ID,
			b.SpaceID,
			b.StartTime.Format(time.RFC3339),
			b.EndTime.Format(time.RFC3339),
			b.Status,
		)
	}

	return nil
}

func createBooking(ctx context.Context, args []string, bookings *booking.Service) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	spaceID := fs.String("space", "", "space id")
	user := fs.String("user", "current-user", "user id")
	from := fs.String("from", "", "start time, RFC3339")
	till := fs.String("till", "", "end time, RFC3339")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, err := time.Parse(time.RFC3339, *from)
	if err != nil {
		return fmt.Errorf("invalid -from: %w", err)
	}

	end, err := time.Parse(time.RFC3339, *till)
	if err != nil {
		return fmt.Errorf("invalid -till: %w", err)
	}

	b, err := bookings.Create(ctx, booking.CreateParams{
		SpaceID:   *spaceID,
		UserID:    *user,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		return err
	}

	fmt.Printf("booked %s: space %s, %s - %s, status %s\n",
		b.ID, b.SpaceID, b.StartTime.Format(time.RFC3339), b.EndTime.Format(time.RFC3339), b.Status)

	return nil
}

func cancelBooking(ctx context.Context, args []string, bookings *booking.Service) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.String("id", "", "booking id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := bookings.Cancel(ctx, *id); err != nil {
		return err
	}

	fmt.Printf("booking %s cancelled\n", *id)

	return nil
}

func markVisited(ctx context.Context, args []string, bookings *booking.Service) error {
	fs := flag.NewFlagSet("visited", flag.ExitOnError)
	buildingID := fs.Int("building", 0, "building id")
	placeID := fs.Int("place", 0, "place id")
	visitID := fs.Int("visit", 0, "visit id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := bookings.MarkVisited(ctx, *buildingID, *placeID, *visitID); err != nil {
		return err
	}

	fmt.Printf("visit %d marked as visited\n", *visitID)

	return nil
}

func printQR(args []string) error {
	fs := flag.NewFlagSet("qr", flag.ExitOnError)
	buildingID := fs.Int("building", 0, "building id")
	placeID := fs.Int("place", 0, "place id")
	visitID := fs.Int("visit", 0, "visit id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	payload, err := booking.QRPayload(
		strconv.Itoa(*buildingID),
		strconv.Itoa(*placeID),
		strconv.Itoa(*visitID),
	)
	if err != nil {
		return err
	}

	fmt.Println(payload)

	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: coworkctl <command> [flags]

commands:
  coworkings                         list coworkings
  floors    -coworking <id>          list floors of a coworking
  spaces    -coworking <id>          list bookable spaces of a coworking
  bookings                           list your active bookings
  book      -space <id> -from <t> -till <t> [-user <id>]
  cancel    -id <booking id>
  visited   -building <id> -place <id> -visit <id>
  qr        -building <id> -place <id> -visit <id>`)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stderr)

	return slog.New(h)
}
