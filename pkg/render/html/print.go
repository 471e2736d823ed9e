package html

import (
	"bytes"
	"fmt"

	"github.com/menuforge/menuforge/pkg/menu"
)

// printSettleMillis is how long the print surface waits before invoking the
// platform print dialog, giving fonts and images time to settle.
const printSettleMillis = 1000

// printScript triggers the platform print dialog after the settling delay.
// This is the only script the exporter ever emits; the plain document from
// Render stays script-free.
var printScript = fmt.Sprintf(`<script>
window.addEventListener('load', function () {
  setTimeout(function () { window.print(); }, %d);
});
</script>
`, printSettleMillis)

// RenderPrint produces the hard-copy variant of the document: the exact
// Render output plus a script that opens the print dialog once the page has
// settled. There is no independent rendering logic in the print path.
func RenderPrint(p *menu.MenuProject, opts ...Option) []byte {
	doc := Render(p, opts...)
	return bytes.Replace(doc, []byte("</body>"), []byte(printScript+"</body>"), 1)
}
