// Package layout renders the HTML document shell shared by catalog pages.
package layout

import "recipeapp/internal/views/theme"

func shellClass(th theme.PageTheme) string {
	if th.ShellClass == "" {
		return "catalog-shell"
	}
	return th.ShellClass
}
