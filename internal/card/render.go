package card

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

const cardStyle = `<style>
  :host {
    display: block;
  }
  ha-card {
    position: relative;
    overflow: hidden;
    border-radius: 18px;
    padding: 14px;
    color: var(--primary-text-color);
    background:
      radial-gradient(120% 90% at 0% 0%, rgba(67, 123, 255, 0.14), transparent 55%),
      radial-gradient(100% 120% at 100% 100%, rgba(36, 177, 116, 0.14), transparent 62%),
      linear-gradient(140deg, var(--card-background-color), color-mix(in srgb, var(--card-background-color), #0b2740 8%));
  }
  .header {
    display: flex;
    justify-content: space-between;
    align-items: baseline;
    gap: 8px;
    margin-bottom: 12px;
  }
  .title {
    font-size: 1.1rem;
    font-weight: 700;
    line-height: 1.2;
  }
  .chip {
    font-size: 0.78rem;
    font-weight: 700;
    text-transform: uppercase;
    letter-spacing: 0.06em;
    border-radius: 999px;
    padding: 5px 9px;
    background: color-mix(in srgb, var(--primary-color), transparent 82%);
    color: var(--primary-color);
  }
  .grid {
    display: grid;
    grid-template-columns: repeat(3, minmax(0, 1fr));
    gap: 10px;
    margin-bottom: 12px;
  }
  .cell {
    border-radius: 14px;
    padding: 10px;
    background: color-mix(in srgb, var(--card-background-color), var(--primary-text-color) 3%);
    border: 1px solid color-mix(in srgb, var(--divider-color), transparent 30%);
    min-height: 92px;
  }
  .cell-head {
    display: flex;
    align-items: center;
    justify-content: space-between;
    margin-bottom: 6px;
    font-size: 0.78rem;
    opacity: 0.9;
  }
  .icon {
    --mdc-icon-size: 22px;
    color: var(--primary-color);
  }
  .main {
    font-size: 0.98rem;
    font-weight: 600;
    line-height: 1.25;
    margin-bottom: 6px;
  }
  .meta {
    font-size: 0.82rem;
    line-height: 1.35;
    opacity: 0.9;
  }
  .footer {
    border-radius: 14px;
    padding: 10px;
    background: color-mix(in srgb, var(--card-background-color), var(--primary-text-color) 2%);
    border: 1px solid color-mix(in srgb, var(--divider-color), transparent 30%);
  }
  .footer .line {
    font-size: 0.88rem;
    line-height: 1.35;
    margin: 2px 0;
  }
</style>
`

// View renders the card markup for m. Every value is written as escaped
// text; icon ids only ever land in attribute values.
func View(m RenderModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		e := htmlWriter{w: w}
		e.raw(cardStyle)
		e.raw(`<ha-card lang="`)
		e.text(m.Labels.Tag.String())
		e.raw("\">\n")

		e.raw(`  <div class="header">` + "\n")
		e.raw(`    <div class="title">`)
		e.text(m.Title)
		e.raw("</div>\n")
		e.raw(`    <div class="chip">Zambretti</div>` + "\n")
		e.raw("  </div>\n")

		e.raw(`  <div class="grid">` + "\n")
		e.cell(m.Labels.Now, m.IconNow, m.ShortText, m.CurrentTemp)
		for _, s := range m.Slots {
			e.cell("~ "+s.Time, s.Icon, m.Labels.Rain+": "+s.Rain+"%", s.Temp)
		}
		e.raw("  </div>\n")

		e.raw(`  <div class="footer">` + "\n")
		e.raw(`    <div class="line"><strong>`)
		e.text(m.Labels.Forecast + ":")
		e.raw("</strong> ")
		e.text(m.ForecastText)
		e.raw("</div>\n")
		e.raw(`    <div class="line"><strong>`)
		e.text(m.Labels.Pressure + ":")
		e.raw("</strong> ")
		e.text(m.TrendText + ", " + m.Pressure + " hPa " + m.Labels.In3h)
		e.raw("</div>\n")
		e.raw("  </div>\n")
		e.raw("</ha-card>\n")
		return e.err
	})
}

// Render returns the markup for m as a string.
func Render(ctx context.Context, m RenderModel) (string, error) {
	var buf bytes.Buffer
	if err := View(m).Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// htmlWriter keeps the first write error so the view can be written
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) cell(head, icon, main, meta string) {
	h.raw(`    <div class="cell">` + "\n")
	h.raw(`      <div class="cell-head">` + "\n")
	h.raw("        <span>")
	h.text(head)
	h.raw("</span>\n")
	h.raw(`        <ha-icon class="icon" icon="`)
	h.text(icon)
	h.raw("\"></ha-icon>\n")
	h.raw("      </div>\n")
	h.raw(`      <div class="main">`)
	h.text(main)
	h.raw("</div>\n")
	h.raw(`      <div class="meta">`)
	h.text(meta)
	h.raw("</div>\n")
	h.raw("    </div>\n")
}
