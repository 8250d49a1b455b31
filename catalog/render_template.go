package catalog

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
)

const backtick = "`"

var productTemplate = strings.TrimSpace(dedent.Dedent(`
	{
	  id: "%s",
	  name: "%s",
	  slug: "%s",
	  brand: "%s",
	  price: %s,
	  rating: %s,
	  image: "%s",
	  images: [%s],
	  inStock: %t,
	  stockQuantity: %d,
	  category: "%s",
	  description: "%s",
	  tastingNotes: "%s",
	  abv: %d,
	  volume: "%s",
	  region: "%s",
	  country: "%s",
	  sku: generateSKU("%s", %d),
	  tags: [%s],
	  reviewCount: %d,
	  createdAt: randomPastDate(%d)
	},`))

var helperTemplate = strings.TrimSpace(dedent.Dedent(`
	export const generateSKU = (category: string, index: number): string => {
	    const prefix = category.substring(0, 3).toUpperCase()
	    return ` + backtick + `${prefix}-${String(index).padStart(4, '0')}` + backtick + `
	}

	export const randomPastDate = (monthsAgo: number): string => {
	    const now = new Date('%s')
	    const past = new Date(now)
	    past.setMonth(past.getMonth() - Math.floor(Math.random() * monthsAgo))
	    return past.toISOString()
	}`))

// FormatProduct renders one product as an object literal. Text fields
// are written verbatim without escaping.
func FormatProduct(product *Product) string {
	return fmt.Sprintf(productTemplate,
		product.Id,
		product.Name,
		product.Slug,
		product.Brand,
		product.Price.String(),
		product.Rating.String(),
		product.Image,
		QuoteList(product.Images),
		product.InStock,
		product.StockQuantity,
		product.Category,
		product.Description,
		product.TastingNotes,
		product.Abv,
		product.Volume,
		product.Region,
		product.Country,
		product.Category,
		product.Position,
		QuoteList(product.Tags),
		product.ReviewCount,
		product.MonthsBack,
	)
}

// FormatHelpers renders the generateSKU and randomPastDate definitions
// the product literals call into.
func FormatHelpers(anchor string) string {
	return fmt.Sprintf(helperTemplate, anchor)
}

func QuoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = `"` + item + `"`
	}
	return strings.Join(quoted, ", ")
}

func indent(text string, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
