// Package render draws the tree and search results as text
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/brettbedarf/webtree"
	"github.com/brettbedarf/webtree/access"
)

const (
	UnlockedIcon = "🔓"
	LockedIcon   = "🔒"
	DeleteMarker = "[x]"
	NotFound     = "NOT FOUND"
)

// View is a consistent read-only view of a tree for one viewer role
type View interface {
	Roots() []webtree.NodeInfo
	Folders(id int64) []webtree.NodeInfo
	Files(id int64) []webtree.NodeInfo
	Decision(id int64) access.Decision
}

// Tree writes a `tree`-style drawing of v. Each root starts a new block;
// within a folder subfolders come before files.
func Tree(w io.Writer, v View) error {
	var b strings.Builder
	for _, root := range v.Roots() {
		writeNode(&b, v, root, "", true, true)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNode(b *strings.Builder, v View, n webtree.NodeInfo, prefix string, isLast, isRoot bool) {
	if !isRoot {
		if isLast {
			b.WriteString(prefix + "└── ")
		} else {
			b.WriteString(prefix + "├── ")
		}
	}
	b.WriteString(Line(n, v.Decision(n.ID())))
	b.WriteString("\n")

	if n.Kind() != webtree.FolderKind {
		return
	}
	children := append(v.Folders(n.ID()), v.Files(n.ID())...)

	var childPrefix string
	switch {
	case isRoot:
		childPrefix = ""
	case isLast:
		childPrefix = prefix + "    "
	default:
		childPrefix = prefix + "│   "
	}
	for i, child := range children {
		writeNode(b, v, child, childPrefix, i == len(children)-1, false)
	}
}

// Line formats a single node: read icon, name (folders end in "/"), id and a
// delete marker when d allows it
func Line(n webtree.NodeInfo, d access.Decision) string {
	icon := LockedIcon
	if d.Read {
		icon = UnlockedIcon
	}
	name := n.Name()
	if n.Kind() == webtree.FolderKind {
		name += "/"
	}
	line := fmt.Sprintf("%s %s #%d", icon, name, n.ID())
	if d.Delete {
		line += " " + DeleteMarker
	}
	return line
}

// Results writes one line per match, or NOT FOUND when there are none
func Results(w io.Writer, nodes []webtree.NodeInfo) error {
	if len(nodes) == 0 {
		_, err := fmt.Fprintln(w, NotFound)
		return err
	}
	for _, n := range nodes {
		if _, err := fmt.Fprintf(w, "#%d\t%s\t%s\n", n.ID(), n.Kind(), n.Name()); err != nil {
			return err
		}
	}
	return nil
}

// Decision writes the capabilities of a single node
func Decision(w io.Writer, n webtree.NodeInfo, role webtree.RoleName, d access.Decision) error {
	_, err := fmt.Fprintf(w, "%s #%d (%s) as %s: read=%t move=%t delete=%t\n",
		n.Name(), n.ID(), n.Kind(), role, d.Read, d.Move, d.Delete)
	return err
}
