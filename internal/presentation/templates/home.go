package templates

import (
	"fmt"
	"strings"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/content"
)

// editable emits the data attributes the inline editor uses to locate a field.
// Outside edit mode the attributes are omitted entirely.
func editable(editMode bool, entry, field string) string {
	if !editMode {
		return ""
	}
	return fmt.Sprintf(" data-cms-entry=\"%s\" data-cms-field=\"%s\"", esc(entry), esc(field))
}

// RenderHomePage renders the home page body from its nested payload. A nil
// payload yields the placeholder body so the route still responds.
func RenderHomePage(data *content.HomePageData, editMode bool) string {
	if data == nil {
		return RenderPlaceholder("This page is being prepared. Please check back soon.")
	}

	const entry = "home"
	var b strings.Builder

	b.WriteString("<section class=\"hero\">\n")
	if data.Hero.VideoUrl != "" {
		fmt.Fprintf(&b, "<video autoplay muted loop playsinline poster=\"%s\"><source src=\"%s\"></video>\n",
			esc(data.Hero.PosterUrl), esc(data.Hero.VideoUrl))
	}
	fmt.Fprintf(&b, "<img class=\"hero-logo\" src=\"%s\" alt=\"%s\"%s>\n",
		esc(data.Hero.LogoUrl), esc(data.Hero.LogoAlt), editable(editMode, entry, "hero.logoUrl"))
	b.WriteString("</section>\n")

	b.WriteString("<section class=\"intro\">\n")
	fmt.Fprintf(&b, "<h1%s>%s</h1>\n", editable(editMode, entry, "intro.headline"), esc(data.Intro.Headline))
	fmt.Fprintf(&b, "<a class=\"button\" href=\"%s\"%s>%s</a>\n",
		esc(data.Intro.CtaUrl), editable(editMode, entry, "intro.ctaText"), esc(data.Intro.CtaText))
	b.WriteString("</section>\n")

	if data.VideoMask.ImageUrl != "" {
		fmt.Fprintf(&b, "<section class=\"video-mask\"><img src=\"%s\" alt=\"\"%s></section>\n",
			esc(data.VideoMask.ImageUrl), editable(editMode, entry, "videoMask.imageUrl"))
	}

	b.WriteString("<section class=\"about\">\n")
	fmt.Fprintf(&b, "<h2%s>%s", editable(editMode, entry, "about.title"), esc(data.About.Title))
	if data.About.TitleItalicPart != "" {
		fmt.Fprintf(&b, " <em>%s</em>", esc(data.About.TitleItalicPart))
	}
	b.WriteString("</h2>\n")
	fmt.Fprintf(&b, "<p%s>%s</p>\n", editable(editMode, entry, "about.body"), esc(data.About.Body))
	fmt.Fprintf(&b, "<a class=\"button\" href=\"%s\"%s>%s</a>\n",
		esc(data.About.CtaUrl), editable(editMode, entry, "about.ctaText"), esc(data.About.CtaText))
	b.WriteString("</section>\n")

	b.WriteString("<section class=\"lodge-carousel\">\n")
	fmt.Fprintf(&b, "<h2%s>%s</h2>\n", editable(editMode, entry, "lodgeCarousel.title"), esc(data.LodgeCarousel.Title))
	b.WriteString("<div class=\"carousel-track\">\n")
	for _, lodge := range data.LodgeCarousel.Lodges {
		b.WriteString("<article class=\"lodge-card\">\n")
		fmt.Fprintf(&b, "<img src=\"%s\" alt=\"%s\">\n", esc(lodge.ImageUrl), esc(lodge.Name))
		if lodge.IconUrl != "" {
			fmt.Fprintf(&b, "<img class=\"lodge-icon\" src=\"%s\" alt=\"\">\n", esc(lodge.IconUrl))
		}
		fmt.Fprintf(&b, "<h3>%s</h3>\n<p>%s, %s</p>\n", esc(lodge.Name), esc(lodge.Region), esc(lodge.Country))
		b.WriteString("</article>\n")
	}
	b.WriteString("</div>\n</section>\n")

	b.WriteString("<section class=\"why-beckons\">\n")
	fmt.Fprintf(&b, "<h2%s>%s</h2>\n", editable(editMode, entry, "whyBeckons.title"), esc(data.WhyBeckons.Title))
	fmt.Fprintf(&b, "<p%s>%s</p>\n", editable(editMode, entry, "whyBeckons.description"), esc(data.WhyBeckons.Description))
	b.WriteString("<div class=\"why-cards\">\n")
	for _, card := range data.WhyBeckons.Cards {
		b.WriteString("<article class=\"why-card\">\n")
		fmt.Fprintf(&b, "<img src=\"%s\" alt=\"\">\n<h3>%s</h3>\n<p>%s</p>\n",
			esc(card.ImageUrl), esc(card.Title), esc(card.Description))
		b.WriteString("</article>\n")
	}
	b.WriteString("</div>\n</section>\n")

	if data.StickyButtonText != "" {
		fmt.Fprintf(&b, "<a class=\"sticky-cta\" href=\"/inquire\"%s>%s</a>\n",
			editable(editMode, entry, "stickyButtonText"), esc(data.StickyButtonText))
	}

	return b.String()
}

// RenderPlaceholder renders the degraded body used when content is unavailable.
func RenderPlaceholder(message string) string {
	return fmt.Sprintf("<section class=\"placeholder\"><p>%s</p></section>\n", esc(message))
}
