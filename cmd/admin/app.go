package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"blog-platform/internal/application/dashboard"
	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
	blog_client "blog-platform/internal/infrastructure/outbound/client/blog"
)

var errUsage = errors.New("usage: admin [flags] list|search <query>|show <post-id>|create [post flags]|edit <post-id> [post flags]|delete <post-id>")

type app struct {
	baseURL   string
	email     string
	password  string
	timeout   time.Duration
	assumeYes bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    ports.Logger
}

// writerNotifier prints dashboard messages on the error stream.
type writerNotifier struct {
	w io.Writer
}

func (n writerNotifier) Notify(message string) {
	fmt.Fprintln(n.w, message)
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	client, err := blog_client.NewClient(a.baseURL, a.timeout, a.log)
	if err != nil {
		return err
	}
	if a.email != "" {
		user, err := client.Login(ctx, a.email, a.password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		fmt.Fprintf(a.errOut, "Logged in as %s\n", user.Email)
	}

	if args[0] == "show" {
		if len(args) < 2 {
			return errUsage
		}
		return a.show(ctx, client, args[1])
	}

	board := dashboard.New(client, writerNotifier{w: a.errOut}, a.log)
	if err := board.Load(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return a.list(board, tabArg(args, 1))
	case "search":
		if len(args) < 2 {
			return errUsage
		}
		board.SetQuery(args[1])
		return a.list(board, tabArg(args, 2))
	case "create":
		return a.create(ctx, board, args[1:])
	case "edit":
		if len(args) < 2 {
			return errUsage
		}
		return a.edit(ctx, board, args[1], args[2:])
	case "delete":
		if len(args) < 2 {
			return errUsage
		}
		return a.delete(ctx, board, args[1])
	default:
		return errUsage
	}
}

func tabArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return "all"
}

func (a *app) list(board *dashboard.Dashboard, tab string) error {
	var posts []*model.PostWithAuthor
	switch tab {
	case "all":
		posts = board.Filtered()
	case "published":
		posts = board.Published()
	case "drafts":
		posts = board.Drafts()
	default:
		return fmt.Errorf("unknown tab %q: want all, published or drafts", tab)
	}

	stats := board.Stats()
	fmt.Fprintf(a.out, "Total: %d  Published: %d  Drafts: %d\n\n", stats.TotalPosts, stats.PublishedPosts, stats.Drafts)

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tSTATUS\tCREATED")
	for _, p := range posts {
		author := ""
		if p.Author != nil {
			author = p.Author.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, author, status(p), p.CreatedAt.Format(time.DateOnly))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts found")
	}
	return nil
}

func (a *app) delete(ctx context.Context, board *dashboard.Dashboard, id string) error {
	reader := bufio.NewReader(a.in)
	confirm := func(p *model.PostWithAuthor) bool {
		if a.assumeYes {
			return true
		}
		fmt.Fprintf(a.out, "Delete %q (%s)? [y/N] ", p.Title, status(p))
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}

	err := board.Delete(ctx, id, confirm)
	switch {
	case errors.Is(err, custom_errors.ErrDeleteCancelled):
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	case err != nil:
		return err
	}

	a.printResult("Deleted", id, board)
	return nil
}

func (a *app) show(ctx context.Context, client *blog_client.Client, id string) error {
	p, err := client.GetPost(ctx, id)
	if err != nil {
		return err
	}
	author := ""
	if p.Author != nil {
		author = p.Author.Name
	}
	fmt.Fprintf(a.out, "%s\n%s by %s, %s\n", p.Title, status(p), author, p.CreatedAt.Format(time.DateOnly))
	if p.Excerpt != nil {
		fmt.Fprintf(a.out, "\n%s\n", *p.Excerpt)
	}
	fmt.Fprintf(a.out, "\n%s\n", p.Content)
	return nil
}

// postFlags are shared by create and edit.
type postFlags struct {
	fs         *flag.FlagSet
	title      string
	content    string
	excerpt    string
	coverImage string
	published  bool
	author     string
}

func newPostFlags(name string, errOut io.Writer) *postFlags {
	pf := &postFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	pf.fs.SetOutput(errOut)
	pf.fs.StringVar(&pf.title, "title", "", "post title")
	pf.fs.StringVar(&pf.content, "content", "", "post content (markdown or HTML)")
	pf.fs.StringVar(&pf.excerpt, "excerpt", "", "short summary")
	pf.fs.StringVar(&pf.coverImage, "cover", "", "cover image url")
	pf.fs.BoolVar(&pf.published, "published", false, "publish the post")
	if name == "create" {
		pf.fs.StringVar(&pf.author, "author", "", "author user id")
	}
	return pf
}

// set reports the flags given on the command line.
func (pf *postFlags) set() map[string]bool {
	seen := make(map[string]bool)
	pf.fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	return seen
}

func (a *app) create(ctx context.Context, board *dashboard.Dashboard, args []string) error {
	pf := newPostFlags("create", a.errOut)
	if err := pf.fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(pf.title) == "" || strings.TrimSpace(pf.content) == "" || pf.author == "" {
		return errors.New("create needs -title, -content and -author")
	}

	input := &model.CreatePostDTO{
		Title:     pf.title,
		Content:   pf.content,
		AuthorID:  pf.author,
		Published: &pf.published,
	}
	seen := pf.set()
	if seen["excerpt"] {
		input.Excerpt = &pf.excerpt
	}
	if seen["cover"] {
		input.CoverImage = &pf.coverImage
	}

	post, err := board.Create(ctx, input)
	if err != nil {
		return err
	}
	a.printResult("Created", post.ID, board)
	return nil
}

func (a *app) edit(ctx context.Context, board *dashboard.Dashboard, id string, args []string) error {
	pf := newPostFlags("edit", a.errOut)
	if err := pf.fs.Parse(args); err != nil {
		return err
	}

	update := &model.UpdatePostDTO{}
	for name := range pf.set() {
		switch name {
		case "title":
			update.Title = &pf.title
		case "content":
			update.Content = &pf.content
		case "excerpt":
			update.Excerpt = &pf.excerpt
		case "cover":
			update.CoverImage = &pf.coverImage
		case "published":
			update.Published = &pf.published
		}
	}

	if _, err := board.Update(ctx, id, update); err != nil {
		return err
	}
	a.printResult("Updated", id, board)
	return nil
}

func (a *app) printResult(verb, id string, board *dashboard.Dashboard) {
	stats := board.Stats()
	fmt.Fprintf(a.out, "%s %s. Total: %d  Published: %d  Drafts: %d\n", verb, id, stats.TotalPosts, stats.PublishedPosts, stats.Drafts)
}

func status(p *model.PostWithAuthor) string {
	if p.Published {
		return "published"
	}
	return "draft"
}
