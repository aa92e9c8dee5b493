package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_generateDiagram(t *testing.T) {
	if err := NewDesignDiagram().SaveAs("design.svg"); err != nil {
		t.Fatal(err)
	}
	if err := NewConnectSequence().SaveAs("connect.svg"); err != nil {
		t.Fatal(err)
	}
}

func TestWriteManual(t *testing.T) {
	dir := t.TempDir()
	WriteManual(dir, "../script/testdata/orders.toml")
	data, err := os.ReadFile(filepath.Join(dir, "man.html"))
	if err != nil {
		t.Fatal(err)
	}
	if v := string(data); !strings.Contains(v, "root/orders/Order class") {
		t.Error("missing replay output")
	}
}
