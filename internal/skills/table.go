package skills

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// RenderTableHTML turns a filtered catalog into resume table markup: one
// header row per category followed by its skills laid out two per row, with
// an empty right cell when a category has an odd skill count. Skill strings
// are inserted verbatim, without HTML escaping.
func RenderTableHTML(filtered *types.SkillsCatalog) string {
	var rows []string

	for _, category := range filtered.Categories {
		rows = append(rows, fmt.Sprintf(`<tr><td class="category">%s</td><td></td></tr>`, category.Name))

		for i := 0; i < len(category.Skills); i += 2 {
			left := category.Skills[i]
			right := ""
			if i+1 < len(category.Skills) {
				right = category.Skills[i+1]
			}
			rows = append(rows, fmt.Sprintf("<tr><td class='skill-item'>%s</td><td class='skill-item'>%s</td></tr>", left, right))
		}
	}

	return "<table>\n" + strings.Join(rows, "\n") + "\n</table>"
}
