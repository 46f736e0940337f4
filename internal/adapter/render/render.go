package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
)

//go:embed templates/*.html
var templateFiles embed.FS

// PageTemplateName is the template gin renders for every page response.
const PageTemplateName = "page.html"

// PageView is the data handed to the page template.
type PageView struct {
	Caption string
	Mode    domain.Mode
	Form    domain.Form
	List    template.HTML
}

type Renderer struct {
	templates *template.Template
	policy    *bluemonday.Policy
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New(PageTemplateName).
		Funcs(template.FuncMap{"pathEscape": url.PathEscape}).
		ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{
		templates: tmpl,
		policy:    listPolicy(),
	}, nil
}

// Templates is the template set to install with gin's SetHTMLTemplate.
func (r *Renderer) Templates() *template.Template {
	return r.templates
}

// List rebuilds the list container markup from scratch.
func (r *Renderer) List(view domain.ListView) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "list", view); err != nil {
		return "", fmt.Errorf("render list: %w", err)
	}
	cleaned := strings.TrimSpace(r.policy.Sanitize(buf.String()))
	return template.HTML(cleaned), nil
}

func (r *Renderer) Page(page *domain.Page) (PageView, error) {
	list, err := r.List(page.List)
	if err != nil {
		return PageView{}, err
	}
	return PageView{
		Caption: page.SubmitCaption(),
		Mode:    page.Mode(),
		Form:    page.Form,
		List:    list,
	}, nil
}

// listPolicy allows exactly the markup the list template produces.
func listPolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("div", "h3", "p", "form", "button", "img")

	policy.AllowAttrs("class", "data-id").OnElements("div", "button")
	policy.AllowAttrs("type").OnElements("button")
	policy.AllowAttrs("method", "action").OnElements("form")
	policy.AllowAttrs("src", "alt", "width", "height").OnElements("img")

	policy.AllowURLSchemes("http", "https")
	policy.AllowRelativeURLs(true)
	policy.RequireParseableURLs(true)

	return policy
}
