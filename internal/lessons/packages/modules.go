package packages

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/marcodamonte/golessons/internal/lessons/packages/inventory"
)

func demoThirdParty(w io.Writer) {
	fmt.Fprintln(w, "  go get github.com/google/uuid@v1.6.0  → adds a require line to go.mod")

	// Name-based UUIDs are deterministic: same namespace + name, same ID.
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://go.dev"))
	again := uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://go.dev"))
	fmt.Fprintf(w, "  uuid.NewSHA1(NameSpaceURL, \"https://go.dev\") = %s (version %d)\n", id, id.Version())
	fmt.Fprintf(w, "  same inputs, same UUID → %v\n", id == again)

	random := uuid.New()
	fmt.Fprintf(w, "  uuid.New() is random, version %d, variant %s\n", random.Version(), random.Variant())

	parsed, err := uuid.Parse("not-a-uuid")
	fmt.Fprintf(w, "  uuid.Parse(\"not-a-uuid\") → %v, err=%v\n", parsed == uuid.Nil, err != nil)
}

func demoWorkspaces(w io.Writer) {
	fmt.Fprintln(w, "  A go.work file lets several local modules build together without replace directives:")
	fmt.Fprintln(w, "    go 1.24")
	fmt.Fprintln(w, "    use (")
	fmt.Fprintln(w, "        ./golessons")
	fmt.Fprintln(w, "        ./shared")
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w, "  go work init ./a ./b creates it; go work use ./c adds a module.")
}

func demoInventory(w io.Writer) {
	var store inventory.Store = inventory.New()

	steps := []struct {
		op  string
		sku string
		qty int
	}{
		{"add", "pen", 10},
		{"add", "notebook", 3},
		{"remove", "pen", 4},
		{"remove", "notebook", 5},
		{"remove", "eraser", 1},
		{"add", "pen", 0},
	}
	for _, s := range steps {
		var err error
		if s.op == "add" {
			err = store.Add(s.sku, s.qty)
		} else {
			err = store.Remove(s.sku, s.qty)
		}
		if err != nil {
			fmt.Fprintf(w, "  %-6s %-8s %2d → error: %v\n", s.op, s.sku, s.qty, err)
			continue
		}
		fmt.Fprintf(w, "  %-6s %-8s %2d → ok\n", s.op, s.sku, s.qty)
	}

	for _, sku := range store.SKUs() {
		fmt.Fprintf(w, "  stock %-8s = %d\n", sku, store.Quantity(sku))
	}
	fmt.Fprintln(w, "  The caller only sees inventory.Store; the concrete type stays unexported.")
}
