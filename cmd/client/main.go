package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/achabill/blog/internal/adapter"
	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: blog-client [flags] <command> [args]

commands:
  register <username> <password>       create an account, print profile + token
  login    <username> <password>       exchange credentials for a token
  profile                              show the authenticated principal
  post     <title> <body> [tags...]    publish a post
  get      <post-id>                   fetch a single post
  list                                 list posts, newest first
  update   <post-id> <title> <body>    retitle and rewrite an owned post
  delete   <post-id>                   delete an owned post
  comment  <post-id> <body>            comment on a post
  comments <post-id>                   list the comments on a post
  follow   <user-id>                   follow a user
  unfollow <user-id>                   unfollow a user
  has      <follower-id> <user-id>     check a follow relationship

flags:
  -s <url>    server base URL (default http://localhost:4000)
  -t <token>  bearer token for authenticated commands
`

func main() {
	printBuildInfo()

	log := logger.NewLogger("blog-client")

	baseURL := flag.String("s", "http://localhost:4000", "server base URL")
	token := flag.String("t", "", "bearer token for authenticated commands")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	client := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{BaseURL: *baseURL})
	if *token != "" {
		client.SetToken(*token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := runCommand(ctx, client, args[0], args[1:]); err != nil {
		log.Fatal().Err(err).Str("command", args[0]).Msg("command failed")
	}
}

func runCommand(ctx context.Context, client adapter.ServerAdapter, command string, args []string) error {
	switch command {
	case "register":
		if len(args) < 2 {
			return fmt.Errorf("register: expected <username> <password>")
		}
		auth, err := client.Register(ctx, models.RegisterRequest{Username: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		return printJSON(auth)

	case "login":
		if len(args) < 2 {
			return fmt.Errorf("login: expected <username> <password>")
		}
		auth, err := client.Login(ctx, models.LoginRequest{Username: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		return printJSON(auth)

	case "profile":
		profile, err := client.Profile(ctx)
		if err != nil {
			return err
		}
		return printJSON(profile)

	case "post":
		if len(args) < 2 {
			return fmt.Errorf("post: expected <title> <body> [tags...]")
		}
		post, err := client.CreatePost(ctx, models.CreatePostRequest{
			Title:   args[0],
			Body:    args[1],
			TagList: args[2:],
		})
		if err != nil {
			return err
		}
		return printJSON(post)

	case "get":
		if len(args) < 1 {
			return fmt.Errorf("get: expected <post-id>")
		}
		post, err := client.GetPost(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(post)

	case "list":
		posts, err := client.ListPosts(ctx, models.ListQuery{})
		if err != nil {
			return err
		}
		return printJSON(posts)

	case "update":
		if len(args) < 3 {
			return fmt.Errorf("update: expected <post-id> <title> <body>")
		}
		post, err := client.UpdatePost(ctx, args[0], models.PostPatch{Title: &args[1], Body: &args[2]})
		if err != nil {
			return err
		}
		return printJSON(post)

	case "delete":
		if len(args) < 1 {
			return fmt.Errorf("delete: expected <post-id>")
		}
		return client.DeletePost(ctx, args[0])

	case "comment":
		if len(args) < 2 {
			return fmt.Errorf("comment: expected <post-id> <body>")
		}
		comment, err := client.CreateComment(ctx, models.CreateCommentRequest{PostID: args[0], Body: args[1]})
		if err != nil {
			return err
		}
		return printJSON(comment)

	case "comments":
		if len(args) < 1 {
			return fmt.Errorf("comments: expected <post-id>")
		}
		comments, err := client.ListComments(ctx, args[0], models.ListQuery{})
		if err != nil {
			return err
		}
		return printJSON(comments)

	case "follow":
		if len(args) < 1 {
			return fmt.Errorf("follow: expected <user-id>")
		}
		follow, err := client.Follow(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(follow)

	case "unfollow":
		if len(args) < 1 {
			return fmt.Errorf("unfollow: expected <user-id>")
		}
		return client.Unfollow(ctx, args[0])

	case "has":
		if len(args) < 2 {
			return fmt.Errorf("has: expected <follower-id> <user-id>")
		}
		has, err := client.IsFollowing(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(models.HasResponse{Has: has})

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
