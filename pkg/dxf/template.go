package dxf

import (
	"fmt"
	"strings"
)

// documentTemplate takes the $INSUNITS code and the entity records.
const documentTemplate = `0
SECTION
2
HEADER
9
$ACADVER
1
` + ACADVersion + `
9
$INSUNITS
70
%d
0
ENDSEC
0
SECTION
2
TABLES
0
TABLE
2
LAYER
70
1
0
LAYER
2
0
70
0
62
7
6
CONTINUOUS
0
ENDTAB
0
ENDSEC
0
SECTION
2
BLOCKS
0
ENDSEC
0
SECTION
2
ENTITIES
%s
0
ENDSEC
0
SECTION
2
OBJECTS
0
ENDSEC
0
EOF
`

func renderDocument(units Units, entities []Entity) string {
	var b strings.Builder
	for _, e := range entities {
		b.WriteString(e.DXF())
	}
	body := strings.TrimRight(b.String(), " \t\r\n")
	return fmt.Sprintf(documentTemplate, units.Code(), body)
}
