package render

import "html/template"

// One presentational template per block type. Content is decoded into
// its typed schema before execution, so templates only ever see fields
// the registry knows about.
var blockTemplates = map[string]*template.Template{
	"hero": tmpl("hero", `<section class="hero">
{{if .ImageURL}}<img src="{{.ImageURL}}" alt="">{{end}}
<h1>{{.Title}}</h1>
{{if .Subtitle}}<p>{{.Subtitle}}</p>{{end}}
{{if .CTAText}}<a class="btn" href="{{.CTAURL}}">{{.CTAText}}</a>{{end}}
</section>`),

	"text": tmpl("text", `<section class="text">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div>{{.Body}}</div>
</section>`),

	"features": tmpl("features", `<section class="features">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<ul>{{range .Items}}<li>{{if .IconURL}}<img src="{{.IconURL}}" alt="">{{end}}<h3>{{.Title}}</h3><p>{{.Description}}</p></li>{{end}}</ul>
</section>`),

	"pricing": tmpl("pricing", `<section class="pricing">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<ul>{{range .Packages}}<li><h3>{{.Name}}</h3><p class="price">{{.Price}}{{if .Period}} / {{.Period}}{{end}}</p>{{if .CTAText}}<a class="btn">{{.CTAText}}</a>{{end}}</li>{{end}}</ul>
</section>`),

	"testimonials": tmpl("testimonials", `<section class="testimonials">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<ul>{{range .Items}}<li><blockquote>{{.Quote}}</blockquote>{{if .AvatarURL}}<img src="{{.AvatarURL}}" alt="{{.Author}}">{{end}}<cite>{{.Author}}</cite></li>{{end}}</ul>
</section>`),

	"faq": tmpl("faq", `<section class="faq">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{range .Items}}<details><summary>{{.Question}}</summary><p>{{.Answer}}</p></details>{{end}}
</section>`),

	"gallery": tmpl("gallery", `<section class="gallery">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{range .Images}}<figure><img src="{{.URL}}" alt="{{.Alt}}"></figure>{{end}}
</section>`),

	"footer": tmpl("footer", `<footer>
<p>{{.Text}}</p>
<nav>{{range .Links}}<a href="{{.URL}}">{{.Label}}</a>{{end}}</nav>
</footer>`),

	"contact": tmpl("contact", `<section class="contact">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<address>{{.Address}}</address>
{{if .Phone}}<a href="tel:{{.Phone}}">{{.Phone}}</a>{{end}}
{{if .Email}}<a href="mailto:{{.Email}}">{{.Email}}</a>{{end}}
{{if .MapURL}}<iframe src="{{.MapURL}}"></iframe>{{end}}
</section>`),

	"cta": tmpl("cta", `<section class="cta">
<h2>{{.Heading}}</h2>
{{if .Text}}<p>{{.Text}}</p>{{end}}
<a class="btn" href="{{.ButtonURL}}">{{.ButtonText}}</a>
</section>`),

	"stats": tmpl("stats", `<section class="stats">
<ul>{{range .Items}}<li><strong>{{.Value}}</strong><span>{{.Label}}</span></li>{{end}}</ul>
</section>`),

	"team": tmpl("team", `<section class="team">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<ul>{{range .Members}}<li>{{if .PhotoURL}}<img src="{{.PhotoURL}}" alt="{{.Name}}">{{end}}<h3>{{.Name}}</h3><p>{{.Role}}</p></li>{{end}}</ul>
</section>`),

	"video": tmpl("video", `<section class="video">
<video src="{{.VideoURL}}"{{if .PosterURL}} poster="{{.PosterURL}}"{{end}} controls></video>
{{if .Caption}}<p>{{.Caption}}</p>{{end}}
</section>`),

	"divider": tmpl("divider", `<hr class="divider divider-{{.Style}}">`),

	"embed": tmpl("embed", `<section class="embed">
{{.HTML | raw}}
{{if .Caption}}<p>{{.Caption}}</p>{{end}}
</section>`),
}

func tmpl(name, body string) *template.Template {
	return template.Must(template.New(name).Funcs(template.FuncMap{
		// embed content is admin-authored markup, stored as-is
		"raw": func(s string) template.HTML { return template.HTML(s) },
	}).Parse(body))
}
