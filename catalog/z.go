package catalog

import (
	_ "embed"
)

//go:embed table/vodka.yml
var TableVodka []byte
