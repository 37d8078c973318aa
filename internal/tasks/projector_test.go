package tasks

import (
	"testing"

	"echub/internal/model"
)

func fixtureTasks() []model.Task {
	return []model.Task{
		{ID: "t1", Title: "Prepare contract", Project: "Vektor", Status: model.StatusTodo, AssigneeID: "u1"},
		{ID: "t1-1", Title: "Collect requisites", Project: "Vektor", Status: model.StatusDone, ParentID: "t1", AssigneeID: "u2"},
		{ID: "t1-2", Title: "Legal review", Project: "Vektor", Status: model.StatusInProgress, ParentID: "t1", AssigneeID: "u1"},
		{ID: "t2", Title: "Quarterly report", Project: "Internal", Status: model.StatusReview, AssigneeID: "u2"},
		{ID: "t3", Title: "Update price list", Project: "Vektor", Status: model.StatusTodo, AssigneeID: "u1"},
	}
}

func TestProjectBuildsRootsWithChildren(t *testing.T) {
	nodes := Project(fixtureTasks(), Filter{}, ExpandedSet{})
	if len(nodes) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(nodes))
	}
	if nodes[0].Task.ID != "t1" || len(nodes[0].Children) != 2 {
		t.Fatalf("t1 projection wrong: %+v", nodes[0])
	}
	if nodes[0].Expanded {
		t.Fatal("roots must default to collapsed")
	}
	if nodes[1].HasChildren() || nodes[2].HasChildren() {
		t.Fatal("childless roots must not report children")
	}
}

func TestProjectFilterAppliesToRootsAndChildren(t *testing.T) {
	// "legal" matches only the t1-2 subtask; its root t1 does not match,
	// so neither appears.
	nodes := Project(fixtureTasks(), Filter{Query: "legal"}, ExpandedSet{})
	if len(nodes) != 0 {
		t.Fatalf("child without a matching root leaked: %+v", nodes)
	}

	// "contract" matches the root t1 but none of its children: the root
	// still renders, childless.
	nodes = Project(fixtureTasks(), Filter{Query: "contract"}, ExpandedSet{})
	if len(nodes) != 1 || nodes[0].Task.ID != "t1" {
		t.Fatalf("expected lone t1 root, got %+v", nodes)
	}
	if nodes[0].HasChildren() {
		t.Fatalf("children must be filtered independently, got %+v", nodes[0].Children)
	}
}

func TestProjectChildAppearsIffItAndRootMatch(t *testing.T) {
	// Assignee u1 matches root t1 and child t1-2 but not child t1-1.
	nodes := Project(fixtureTasks(), Filter{AssigneeID: "u1"}, ExpandedSet{})
	var t1 *Node
	for i := range nodes {
		if nodes[i].Task.ID == "t1" {
			t1 = &nodes[i]
		}
	}
	if t1 == nil {
		t.Fatal("expected t1 in filtered roots")
	}
	if len(t1.Children) != 1 || t1.Children[0].ID != "t1-2" {
		t.Fatalf("expected only t1-2 under t1, got %+v", t1.Children)
	}
}

func TestProjectProjectFilter(t *testing.T) {
	nodes := Project(fixtureTasks(), Filter{Project: "Internal"}, ExpandedSet{})
	if len(nodes) != 1 || nodes[0].Task.ID != "t2" {
		t.Fatalf("expected lone t2 root, got %+v", nodes)
	}
}

func TestExpandedSetToggle(t *testing.T) {
	exp := ExpandedSet{}
	exp.Toggle("t1")
	exp.Toggle("t3")
	nodes := Project(fixtureTasks(), Filter{}, exp)
	if !nodes[0].Expanded {
		t.Fatal("t1 should be expanded")
	}
	if nodes[1].Expanded {
		t.Fatal("t2 should stay collapsed")
	}

	exp.Toggle("t1")
	nodes = Project(fixtureTasks(), Filter{}, exp)
	if nodes[0].Expanded {
		t.Fatal("t1 should collapse on second toggle")
	}
}

func TestBoardBucketsRootsByStatus(t *testing.T) {
	cols := Board(fixtureTasks(), Filter{}, ExpandedSet{"t1": true}, false)
	if len(cols) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(cols))
	}
	if cols[0].Status != model.StatusTodo || len(cols[0].Nodes) != 2 {
		t.Fatalf("todo column wrong: %+v", cols[0])
	}
	// Subtasks nest under the parent card and are not re-bucketed: the Done
	// column holds no cards even though subtask t1-1 is Done.
	if len(cols[3].Nodes) != 0 {
		t.Fatalf("done column must be empty, got %+v", cols[3].Nodes)
	}
	// The nested children travel with the root card.
	var t1 *Node
	for i := range cols[0].Nodes {
		if cols[0].Nodes[i].Task.ID == "t1" {
			t1 = &cols[0].Nodes[i]
		}
	}
	if t1 == nil || len(t1.Children) != 2 || !t1.Expanded {
		t.Fatalf("t1 card wrong: %+v", t1)
	}
}

func TestBoardSplitSubtasksRebuckets(t *testing.T) {
	cols := Board(fixtureTasks(), Filter{}, ExpandedSet{}, true)
	// With the split behavior, t1-1 lands in Done and t1-2 in InProgress.
	if len(cols[3].Nodes) != 1 || cols[3].Nodes[0].Task.ID != "t1-1" {
		t.Fatalf("done column: %+v", cols[3].Nodes)
	}
	if len(cols[1].Nodes) != 1 || cols[1].Nodes[0].Task.ID != "t1-2" {
		t.Fatalf("inprogress column: %+v", cols[1].Nodes)
	}
	// The root card no longer carries nested children.
	for _, n := range cols[0].Nodes {
		if n.Task.ID == "t1" && len(n.Children) != 0 {
			t.Fatalf("split board must not nest children: %+v", n)
		}
	}
}

func TestBoardCollapsedRootHidesChildren(t *testing.T) {
	cols := Board(fixtureTasks(), Filter{}, ExpandedSet{}, false)
	var t1 *Node
	for i := range cols[0].Nodes {
		if cols[0].Nodes[i].Task.ID == "t1" {
			t1 = &cols[0].Nodes[i]
		}
	}
	if t1 == nil {
		t.Fatal("t1 card missing from todo column")
	}
	// A collapsed card carries no nested lines, matching the list view.
	if len(t1.Children) != 0 || t1.Expanded {
		t.Fatalf("collapsed card must not nest children: %+v", t1)
	}
	// Subtasks of a collapsed root do not leak into their own columns either.
	if len(cols[1].Nodes) != 0 || len(cols[3].Nodes) != 0 {
		t.Fatalf("subtasks leaked out of the collapsed card: %+v / %+v", cols[1].Nodes, cols[3].Nodes)
	}
}
