package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestRenderTableHTML_TwoPerRow(t *testing.T) {
	filtered := catalog(types.SkillCategory{Name: "Databases", Skills: []string{"MySQL", "MongoDB"}})

	html := RenderTableHTML(filtered)

	assert.Equal(t, "<table>\n"+
		`<tr><td class="category">Databases</td><td></td></tr>`+"\n"+
		"<tr><td class='skill-item'>MySQL</td><td class='skill-item'>MongoDB</td></tr>"+
		"\n</table>", html)
}

func TestRenderTableHTML_OddCountEmptyRightCell(t *testing.T) {
	filtered := catalog(types.SkillCategory{Name: "Languages", Skills: []string{"Go", "Python", "Rust"}})

	html := RenderTableHTML(filtered)

	assert.Contains(t, html, "<tr><td class='skill-item'>Rust</td><td class='skill-item'></td></tr>")
}

func TestRenderTableHTML_RowCount(t *testing.T) {
	// N skills yield ceil(N/2) skill rows plus one header row per category.
	filtered := catalog(
		types.SkillCategory{Name: "A", Skills: []string{"1", "2", "3", "4", "5"}},
		types.SkillCategory{Name: "B", Skills: []string{"6"}},
	)

	html := RenderTableHTML(filtered)

	rows := strings.Count(html, "<tr>")
	require.Equal(t, 2+3+1, rows)
}

func TestRenderTableHTML_NoEscaping(t *testing.T) {
	filtered := catalog(types.SkillCategory{Name: "Web", Skills: []string{"<HTML & CSS>"}})

	html := RenderTableHTML(filtered)

	assert.Contains(t, html, "<td class='skill-item'><HTML & CSS></td>")
}

func TestRenderTableHTML_Empty(t *testing.T) {
	html := RenderTableHTML(catalog())

	assert.Equal(t, "<table>\n\n</table>", html)
}
