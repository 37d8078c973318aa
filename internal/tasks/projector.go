// Package tasks projects the flat task collection into the tree and board
// shapes the list and kanban screens render.
package tasks

import (
	"echub/internal/listutil"
	"echub/internal/model"
)

// Filter narrows the projection. Query matches title, description and
// project case-insensitively; Project and AssigneeID match exactly when set.
type Filter struct {
	Query      string
	Project    string
	AssigneeID string
}

func (f Filter) matches(t model.Task) bool {
	if f.Project != "" && t.Project != f.Project {
		return false
	}
	if f.AssigneeID != "" && t.AssigneeID != f.AssigneeID {
		return false
	}
	if f.Query == "" {
		return true
	}
	hit := listutil.FilterBySubstring([]model.Task{t}, f.Query, func(t model.Task) []string {
		return []string{t.Title, t.Description, t.Project}
	})
	return len(hit) == 1
}

// Node is a filtered root with its filtered children.
type Node struct {
	Task     model.Task
	Children []model.Task
	Expanded bool
}

// HasChildren reports whether the node shows a disclosure affordance.
func (n Node) HasChildren() bool { return len(n.Children) > 0 }

// ExpandedSet tracks which roots are expanded; roots default to collapsed.
type ExpandedSet map[string]bool

func (e ExpandedSet) Toggle(id string) {
	if e[id] {
		delete(e, id)
		return
	}
	e[id] = true
}

// Project rebuilds the root list from the flat collection. The filter is
// applied uniformly: a child appears under its root only if it matches on
// its own, and only when the root itself made the cut. Roots whose children
// were all filtered away still render, without children.
func Project(all []model.Task, f Filter, expanded ExpandedSet) []Node {
	childrenOf := make(map[string][]model.Task)
	for _, t := range all {
		if t.ParentID == "" {
			continue
		}
		if f.matches(t) {
			childrenOf[t.ParentID] = append(childrenOf[t.ParentID], t)
		}
	}

	out := make([]Node, 0, len(all))
	for _, t := range all {
		if !t.IsRoot() || !f.matches(t) {
			continue
		}
		out = append(out, Node{
			Task:     t,
			Children: childrenOf[t.ID],
			Expanded: expanded[t.ID],
		})
	}
	return out
}

// Column is one status lane of the kanban board.
type Column struct {
	Status model.TaskStatus
	Nodes  []Node
}

// Board buckets the projected roots by status into the four fixed columns.
// Subtasks stay nested under their root's card whatever their own status,
// and only while the root is expanded; collapsed cards carry no nested
// lines, same as the list view. SplitSubtasks flips the nesting off for
// teams that want children in their own lanes.
func Board(all []model.Task, f Filter, expanded ExpandedSet, splitSubtasks bool) []Column {
	nodes := Project(all, f, expanded)
	byStatus := make(map[model.TaskStatus][]Node, 4)

	for _, n := range nodes {
		if !splitSubtasks {
			if !n.Expanded {
				n.Children = nil
			}
			byStatus[n.Task.Status] = append(byStatus[n.Task.Status], n)
			continue
		}
		kept := n
		kept.Children = nil
		byStatus[n.Task.Status] = append(byStatus[n.Task.Status], kept)
		for _, child := range n.Children {
			byStatus[child.Status] = append(byStatus[child.Status], Node{Task: child})
		}
	}

	out := make([]Column, 0, 4)
	for _, s := range model.TaskStatuses() {
		out = append(out, Column{Status: s, Nodes: byStatus[s]})
	}
	return out
}
