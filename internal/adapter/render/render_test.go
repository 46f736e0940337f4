package render

import (
	"strings"
	"testing"

	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestList_SingleRecord(t *testing.T) {
	r := newRenderer(t)

	html, err := r.List(domain.NewListView([]*domain.Bicycle{
		{ID: "1", Brand: "Trek", Model: "Marlin", Type: "MTB", Color: "Red", Price: 500, Image: "x.png"},
	}))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	out := string(html)

	for _, want := range []string{
		`class="bicycle-item"`,
		`data-id="1"`,
		"Trek Marlin",
		"Type: MTB",
		"Color: Red",
		"Price: $500",
		`src="x.png"`,
		`class="edit-btn"`,
		`class="delete-btn"`,
		`action="/bicycles/1/edit"`,
		`action="/bicycles/1/delete"`,
		">Edit</button>",
		">Delete</button>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if n := strings.Count(out, `class="bicycle-item"`); n != 1 {
		t.Fatalf("expected exactly one block, got %d", n)
	}
}

func TestList_OneBlockPerRecord(t *testing.T) {
	r := newRenderer(t)

	records := []*domain.Bicycle{
		{ID: "1", Brand: "Trek"},
		{ID: "2", Brand: "Giant"},
		{ID: "abc", Brand: "Cube"},
	}
	html, err := r.List(domain.NewListView(records))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	out := string(html)

	if n := strings.Count(out, `class="bicycle-item"`); n != len(records) {
		t.Fatalf("expected %d blocks, got %d", len(records), n)
	}
	for _, b := range records {
		// block, edit control and delete control
		if n := strings.Count(out, `data-id="`+b.ID.String()+`"`); n != 3 {
			t.Errorf("expected id %s on block and both controls, got %d", b.ID, n)
		}
	}
	if strings.Index(out, "Trek") > strings.Index(out, "Giant") {
		t.Fatal("records must keep server order")
	}
}

func TestList_PathEscapesIDsInActions(t *testing.T) {
	r := newRenderer(t)

	html, err := r.List(domain.NewListView([]*domain.Bicycle{{ID: "a/b c", Brand: "Cube"}}))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	out := string(html)

	for _, want := range []string{
		`action="/bicycles/a%2Fb%20c/edit"`,
		`action="/bicycles/a%2Fb%20c/delete"`,
		`data-id="a/b c"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in:\n%s", want, out)
		}
	}
}

func TestList_Placeholders(t *testing.T) {
	r := newRenderer(t)

	tests := []struct {
		name string
		view domain.ListView
		want string
	}{
		{"empty", domain.NewListView(nil), domain.MessageNoBicycles},
		{"load failure", domain.FailedListView(), domain.MessageLoadFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.List(tt.view)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if string(html) != "<p>"+tt.want+"</p>" {
				t.Fatalf("unexpected markup %q", html)
			}
		})
	}
}

func TestList_EscapesRecordText(t *testing.T) {
	r := newRenderer(t)

	html, err := r.List(domain.NewListView([]*domain.Bicycle{
		{ID: "1", Brand: `<script>alert(1)</script>`, Model: "X", Image: "javascript:alert(1)"},
	}))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	out := string(html)

	if strings.Contains(out, "<script") {
		t.Fatalf("script tag leaked: %s", out)
	}
	if strings.Contains(out, "javascript:") {
		t.Fatalf("unsafe image url leaked: %s", out)
	}
}

func TestPage_CaptionFollowsMode(t *testing.T) {
	r := newRenderer(t)

	page := domain.NewPage()
	view, err := r.Page(page)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if view.Caption != domain.CaptionCreate {
		t.Fatalf("expected %q, got %q", domain.CaptionCreate, view.Caption)
	}

	page.StartEditing("4", &domain.Bicycle{Brand: "Trek"})
	view, err = r.Page(page)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if view.Caption != domain.CaptionUpdate || view.Form.Brand != "Trek" {
		t.Fatalf("unexpected edit view %+v", view)
	}
}

func TestPageTemplate_RendersForm(t *testing.T) {
	r := newRenderer(t)

	page := domain.NewPage()
	page.StartEditing("4", &domain.Bicycle{Brand: "Trek", Model: "Marlin", Price: 12.5})
	view, err := r.Page(page)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	var buf strings.Builder
	if err := r.Templates().ExecuteTemplate(&buf, PageTemplateName, view); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`id="bicycle-form"`,
		`value="Trek"`,
		`value="12.5"`,
		`>Update Bicycle</button>`,
		`id="bicycle-list"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in page", want)
		}
	}
}
