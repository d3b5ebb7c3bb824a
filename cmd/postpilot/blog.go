package main

import (
	"github.com/spf13/cobra"

	"github.com/postpilot/postpilot/internal/blog"
	"github.com/postpilot/postpilot/internal/observability"
)

var (
	blogCategory string
	blogJSON     bool
)

var blogCmd = &cobra.Command{
	Use:   "blog [slug]",
	Short: "List blog posts or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBlog,
}

func init() {
	blogCmd.Flags().StringVar(&blogCategory, "category", "", "Only list posts in this category")
	blogCmd.Flags().BoolVar(&blogJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(blogCmd)
}

func runBlog(cmd *cobra.Command, args []string) error {
	catalog, err := blog.Load()
	if err != nil {
		return err
	}
	p := observability.NewPrinter(cmd.OutOrStdout())

	if len(args) == 1 {
		post, err := catalog.Get(args[0])
		if err != nil {
			return err
		}
		if blogJSON {
			return writeJSON(cmd.OutOrStdout(), post)
		}
		p.PrintBlogPost(post)
		return nil
	}

	posts := catalog.List(blogCategory)
	if blogJSON {
		return writeJSON(cmd.OutOrStdout(), posts)
	}
	p.PrintBlogPosts(posts)
	return nil
}
