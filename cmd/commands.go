package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brettbedarf/webtree"
	"github.com/brettbedarf/webtree/internal/render"
	"github.com/brettbedarf/webtree/internal/util"
)

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the tree for the viewer role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			return a.printTree()
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find folders and files whose name contains query, ignoring case",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			nodes, err := a.tree.FindByName(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return render.Results(a.out, nodes)
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a node (folders take their subtree) and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			if !a.tree.DeleteByID(id) {
				return fmt.Errorf("node %d: %w", id, webtree.ErrNotFound)
			}
			return a.printIfChanged()
		},
	}
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <target-folder-id>",
		Short: "Move a node into a folder and print the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0])
			if err != nil {
				return err
			}
			targetID, err := parseID(args[1])
			if err != nil {
				return err
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			if _, err := a.tree.MoveItem(itemID, targetID); err != nil {
				var moveErr *webtree.MoveError
				if errors.As(err, &moveErr) {
					util.GetLogger("main").Debug().Str("kind", moveErr.Kind.String()).Msg("Move rejected")
				}
				return err
			}
			return a.printIfChanged()
		},
	}
}

func newAccessCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "access <id>",
		Short: "Show what the viewer role may do with a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			n, ok := a.tree.FindByID(id)
			if !ok {
				return fmt.Errorf("node %d: %w", id, webtree.ErrNotFound)
			}
			d, err := a.tree.Access(id)
			if err != nil {
				return err
			}
			return render.Decision(a.out, n, a.tree.Role(), d)
		},
	}
}

// printIfChanged prints the tree after an effective mutation, or a note when
// nothing changed
func (a *app) printIfChanged() error {
	if !a.dirty {
		_, err := fmt.Fprintln(a.out, "no change")
		return err
	}
	return a.printTree()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid node id %q", s)
	}
	return id, nil
}
