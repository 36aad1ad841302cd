package browser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spec-kit/videogames-portal/internal/catalog"
	"github.com/spec-kit/videogames-portal/internal/session"
)

// Route paths mirrored from the portal route table.
const (
	LoginPath   = "/login"
	CatalogPath = "/video-games"
)

// Browser is the navigation shell. It resolves paths against the route
// table, runs the guard before protected views, and drives the view
// state machines over a line-based terminal.
type Browser struct {
	store    session.Store
	issuer   TokenIssuer
	provider catalog.Provider

	in  io.Reader
	out io.Writer

	path string
}

// New builds a browser over the given session store, issuer, and
// catalog provider.
func New(store session.Store, issuer TokenIssuer, provider catalog.Provider, in io.Reader, out io.Writer) *Browser {
	return &Browser{
		store:    store,
		issuer:   issuer,
		provider: provider,
		in:       in,
		out:      out,
	}
}

// Resolve applies the route table to a requested path: the root and
// any unknown path redirect to the login view, and protected paths
// fall back to the login view whenever the session store is empty.
func (b *Browser) Resolve(path string) string {
	switch {
	case path == "" || path == "/":
		return LoginPath
	case path == LoginPath:
		return LoginPath
	case path == CatalogPath, strings.HasPrefix(path, CatalogPath+"/"):
		if !session.IsAuthenticated(b.store) {
			return LoginPath
		}
		return path
	default:
		return LoginPath
	}
}

// Run drives the browser until the user quits or input ends. An
// existing stored session skips the login view, as a reloaded page
// would.
func (b *Browser) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(b.in)
	b.path = b.Resolve(CatalogPath)

	for b.path != "" {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch {
		case b.path == LoginPath:
			err = b.runLogin(ctx, scanner)
		case b.path == CatalogPath:
			err = b.runList(ctx, scanner)
		case strings.HasPrefix(b.path, CatalogPath+"/"):
			err = b.runDetail(ctx, scanner, strings.TrimPrefix(b.path, CatalogPath+"/"))
		default:
			b.path = b.Resolve(b.path)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Browser) navigate(path string) {
	b.path = b.Resolve(path)
}

func (b *Browser) quit() {
	b.path = ""
}

func (b *Browser) prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Fprint(b.out, label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func (b *Browser) runLogin(ctx context.Context, scanner *bufio.Scanner) error {
	fmt.Fprintln(b.out, "Video Games Portal - enter your name to obtain access")

	view := NewLoginView(b.issuer)
	for {
		name, ok := b.prompt(scanner, "Name: ")
		if !ok {
			b.quit()
			return nil
		}
		view.Edit()

		if err := view.Submit(ctx, name); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			switch view.State() {
			case LoginIdle:
				fmt.Fprintln(b.out, "The name is required and must be at least 2 characters.")
			default:
				fmt.Fprintln(b.out, view.Message())
			}
			continue
		}

		fmt.Fprintf(b.out, "Token generated: %.20s...\n", view.Token())
		b.navigate(CatalogPath)
		return nil
	}
}

func (b *Browser) runList(ctx context.Context, scanner *bufio.Scanner) error {
	view := NewListView(b.provider, b.store)

	fmt.Fprintln(b.out, "Loading video games...")
	if err := view.Load(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	if view.State() == FetchErrored {
		fmt.Fprintln(b.out, view.Message())
	} else {
		b.renderList(view)
	}

	for {
		input, ok := b.prompt(scanner, "[id to open, logout, quit] > ")
		if !ok {
			b.quit()
			return nil
		}
		switch input {
		case "":
			continue
		case "logout":
			view.Logout()
			b.navigate(LoginPath)
			return nil
		case "quit":
			b.quit()
			return nil
		default:
			b.navigate(CatalogPath + "/" + input)
			return nil
		}
	}
}

func (b *Browser) renderList(view *ListView) {
	for _, game := range view.Items() {
		fmt.Fprintf(b.out, "  [%s] %s (%s, %d) - %s - $%.2f - %.1f/10\n",
			game.ID, game.Title, game.Platform, game.ReleaseYear, game.Genre, game.Price, game.Rating)
	}
	summary := view.Summary()
	fmt.Fprintf(b.out, "%d games | avg rating %s | %d genres | avg price $%s\n",
		summary.Count, summary.AverageRating, len(summary.UniqueGenres), summary.AveragePrice)
}

func (b *Browser) runDetail(ctx context.Context, scanner *bufio.Scanner, id string) error {
	view := NewDetailView(b.provider, b.store, id)

	fmt.Fprintln(b.out, "Loading video game details...")
	if err := view.Load(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	for {
		if view.State() == FetchErrored {
			fmt.Fprintln(b.out, view.Message())
		} else {
			b.renderDetail(view)
		}

		input, ok := b.prompt(scanner, "[back, retry, logout, quit] > ")
		if !ok {
			b.quit()
			return nil
		}
		switch input {
		case "back":
			b.navigate(CatalogPath)
			return nil
		case "retry":
			fmt.Fprintln(b.out, "Loading video game details...")
			if err := view.Retry(ctx); err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
		case "logout":
			view.Logout()
			b.navigate(LoginPath)
			return nil
		case "quit":
			b.quit()
			return nil
		}
	}
}

func (b *Browser) renderDetail(view *DetailView) {
	game := view.Game()
	fmt.Fprintf(b.out, "%s\n", game.Title)
	fmt.Fprintf(b.out, "  Genre:    %s\n", game.Genre)
	fmt.Fprintf(b.out, "  Platform: %s\n", game.Platform)
	fmt.Fprintf(b.out, "  Year:     %d\n", game.ReleaseYear)
	fmt.Fprintf(b.out, "  Rating:   %.1f/10 %s\n", game.Rating, renderStars(view.Stars()))
	fmt.Fprintf(b.out, "  Price:    $%.2f\n", game.Price)
	fmt.Fprintf(b.out, "  %s\n", game.Description)
	fmt.Fprintf(b.out, "  Session:  %s\n", view.TokenPreview())
}

func renderStars(stars [5]bool) string {
	var sb strings.Builder
	for _, filled := range stars {
		if filled {
			sb.WriteRune('★')
		} else {
			sb.WriteRune('☆')
		}
	}
	return sb.String()
}
