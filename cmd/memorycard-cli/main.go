package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/linkobe24/memorycard-go/internal/api"
	"github.com/linkobe24/memorycard-go/internal/config"
	"github.com/linkobe24/memorycard-go/internal/credentials"
	"github.com/linkobe24/memorycard-go/internal/logger"
)

const usage = `usage: memorycard-cli <command> [args]

commands:
  login <email>              authenticate and store tokens
  register <email> <name>    create an account
  me                         show the signed-in user
  games [page]               list store products
  search <query>             search the game catalog
  cart                       show the shopping cart
  logout                     clear the stored session
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()

	store, err := credentials.NewFileStore(cfg.CredentialsPath)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("Failed to create credential store")
	}

	client := api.NewClient(cfg, store, func() {
		fmt.Fprintln(os.Stderr, "session ended, please log in again")
	})

	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		runLogin(ctx, client, os.Args[2:])
	case "register":
		runRegister(ctx, client, os.Args[2:])
	case "me":
		runMe(ctx, client)
	case "games":
		runGames(ctx, client, os.Args[2:])
	case "search":
		runSearch(ctx, client, os.Args[2:])
	case "cart":
		runCart(ctx, client)
	case "logout":
		client.Logout()
		fmt.Println("logged out")
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runLogin(ctx context.Context, client *api.Client, args []string) {
	if len(args) < 1 {
		fatalf("login requires an email")
	}
	password := readPassword("Password: ")

	if err := client.Login(ctx, args[0], password); err != nil {
		logger.Get().Fatal().Err(err).Msg("Login failed")
	}
	fmt.Println("logged in")
}

func runRegister(ctx context.Context, client *api.Client, args []string) {
	if len(args) < 2 {
		fatalf("register requires an email and a full name")
	}
	password := readPassword("Password: ")

	if err := client.Register(ctx, args[0], password, strings.Join(args[1:], " ")); err != nil {
		logger.Get().Fatal().Err(err).Msg("Registration failed")
	}
	fmt.Println("account created")
}

func runMe(ctx context.Context, client *api.Client) {
	user, err := client.Me(ctx)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("Failed to fetch profile")
	}
	fmt.Printf("%s <%s> (%s)\n", user.FullName, user.Email, user.Role)
}

func runGames(ctx context.Context, client *api.Client, args []string) {
	page := 0
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil {
			fatalf("invalid page %q", args[0])
		}
		page = p
	}

	list, err := client.ListProducts(ctx, page, 0)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("Failed to list products")
	}
	for _, p := range list.Results {
		stock := "out of stock"
		if p.Stock > 0 {
			stock = fmt.Sprintf("%d in stock", p.Stock)
		}
		fmt.Printf("#%d %s - $%.2f (%s)\n", p.ID, p.Title, p.Price, stock)
	}
	fmt.Printf("page %d (%d products total)\n", list.Page, list.Total)
}

func runSearch(ctx context.Context, client *api.Client, args []string) {
	if len(args) < 1 {
		fatalf("search requires a query")
	}

	list, err := client.SearchGames(ctx, strings.Join(args, " "), 0, 0)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("Search failed")
	}
	for _, g := range list.Results {
		released := "unreleased"
		if g.Released != nil {
			released = *g.Released
		}
		fmt.Printf("#%d %s (%s)\n", g.ID, g.Name, released)
	}
}

func runCart(ctx context.Context, client *api.Client) {
	cart, err := client.Cart(ctx)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("Failed to fetch cart")
	}
	for _, item := range cart.Items {
		fmt.Printf("%dx %s - $%.2f\n", item.Quantity, item.GameTitle, item.Subtotal)
	}
	fmt.Printf("total: $%.2f\n", cart.Total)
}

// readPassword prompts without echoing when stdin is a terminal, and falls
// back to a plain line read when it is not (pipes, CI).
func readPassword(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			fatalf("could not read password: %v", err)
		}
		return string(raw)
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		fatalf("could not read password: %v", err)
	}
	return strings.TrimRight(line, "\r\n")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
