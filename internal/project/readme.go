package project

import (
	"fmt"
	"strings"

	"github.com/phravins/projectgen/pkg/utils"
	"golang.org/x/text/message"
)

// RenderReadme returns the README for cfg. Output depends only on its
// arguments.
func RenderReadme(cfg ProjectConfig, date string, p *message.Printer) string {
	description := cfg.Description
	if description == "" {
		description = p.Sprintf("No description provided")
	}
	author := cfg.Author
	if author == "" {
		author = p.Sprintf("Not specified")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cfg.Name)

	fmt.Fprintf(&b, "## 📝 %s\n", p.Sprintf("Description"))
	fmt.Fprintf(&b, "%s\n\n", description)

	fmt.Fprintf(&b, "## 🚀 %s\n", p.Sprintf("Project Type"))
	b.WriteString(p.Sprintf(cfg.Category().Label()))
	b.WriteString("\n")

	if w, ok := cfg.Web(); ok {
		style, framework := w.Style(), w.Framework()
		fmt.Fprintf(&b, "\n## 🎨 %s\n\n", p.Sprintf("Design & Technologies"))
		fmt.Fprintf(&b, "- **%s**: %s - %s\n", p.Sprintf("Style"), style.Name, p.Sprintf(style.Description))
		fmt.Fprintf(&b, "- **%s**: %s - %s\n", p.Sprintf("CSS Framework"), framework.Name, p.Sprintf(framework.Description))
	}

	fmt.Fprintf(&b, "\n## 🛠️ %s\n", p.Sprintf("Installation"))
	fmt.Fprintf(&b, "1. %s\n", p.Sprintf("Clone this repository"))
	fmt.Fprintf(&b, "```bash\ngit clone [%s]\ncd %s\n```\n\n", p.Sprintf("project-url"), utils.SanitizeName(cfg.Name))
	fmt.Fprintf(&b, "2. %s\n", p.Sprintf("Install the dependencies"))
	b.WriteString("```bash\nnpm install\n```\n\n")

	fmt.Fprintf(&b, "## 📖 %s\n", p.Sprintf("Usage"))
	b.WriteString("```bash\nnpm start\n```\n\n")

	fmt.Fprintf(&b, "## 👤 %s\n%s\n\n", p.Sprintf("Author"), author)
	fmt.Fprintf(&b, "## 📅 %s\n%s\n\n", p.Sprintf("Created"), date)
	fmt.Fprintf(&b, "## 📄 %s\nMIT\n", p.Sprintf("License"))

	return b.String()
}
