package structs

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Account mixes exported fields with an unexported one. Code outside this
// package can read Owner but can only touch balance through methods.
type Account struct {
	Owner   string
	balance int
}

func (a *Account) Deposit(n int) {
	if n > 0 {
		a.balance += n
	}
}

func (a *Account) Balance() int { return a.balance }

func demoVisibility(w io.Writer) {
	acc := &Account{Owner: "ana"}
	acc.Deposit(50)
	acc.Deposit(-10) // ignored
	fmt.Fprintf(w, "  Owner=%s Balance()=%d\n", acc.Owner, acc.Balance())
	fmt.Fprintln(w, "  Upper-case first letter → exported. Lower-case → package-private.")
}

type Config struct {
	Host  string
	Port  int
	Debug bool
	Tags  []string
}

func demoCopies(w io.Writer) {
	base := Config{Host: "localhost", Port: 8080, Tags: []string{"a"}}

	// Go has no struct update syntax: copy, then set the fields that differ.
	prod := base
	prod.Host = "example.com"
	prod.Debug = false
	fmt.Fprintf(w, "  base=%+v\n", base)
	fmt.Fprintf(w, "  prod=%+v\n", prod)

	// Assignment copies the struct but NOT what its slices point to.
	prod.Tags[0] = "shared!"
	fmt.Fprintf(w, "  after prod.Tags[0] = \"shared!\": base.Tags=%v\n", base.Tags)

	// Deep copy the slice when the copies must be independent.
	staging := base
	staging.Tags = append([]string(nil), base.Tags...)
	staging.Tags[0] = "own"
	fmt.Fprintf(w, "  staging.Tags=%v base.Tags=%v\n", staging.Tags, base.Tags)

	// Destructuring is field access; there is no pattern syntax for structs.
	host, port := base.Host, base.Port
	fmt.Fprintf(w, "  host, port := base.Host, base.Port → %s:%d\n", host, port)
}

type Animal struct {
	Name string
}

func (a Animal) Describe() string { return "animal " + a.Name }
func (a Animal) Sound() string    { return "..." }

// Dog embeds Animal: Animal's fields and methods are promoted to Dog.
type Dog struct {
	Animal
	Breed string
}

// Sound on Dog shadows the promoted Animal.Sound.
func (d Dog) Sound() string { return "woof" }

func demoEmbedding(w io.Writer) {
	d := Dog{Animal: Animal{Name: "rex"}, Breed: "collie"}
	fmt.Fprintf(w, "  d.Name = %s (promoted field)\n", d.Name)
	fmt.Fprintf(w, "  d.Describe() = %s (promoted method)\n", d.Describe())
	fmt.Fprintf(w, "  d.Sound() = %s, d.Animal.Sound() = %s\n", d.Sound(), d.Animal.Sound())
	fmt.Fprintln(w, "  embedding is composition: a Dog is not an Animal for assignment")
}

// Server shows tags read by encoding/json and gopkg.in/yaml.v3.
type Server struct {
	Name     string            `json:"name" yaml:"name"`
	Port     int               `json:"port" yaml:"port"`
	TLS      bool              `json:"tls,omitempty" yaml:"tls,omitempty"`
	Labels   map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	password string            // unexported: never serialized
	Internal string            `json:"-" yaml:"-"`
}

func demoTags(w io.Writer) {
	s := Server{
		Name:     "api",
		Port:     8443,
		TLS:      true,
		Labels:   map[string]string{"team": "core", "env": "prod"},
		password: "secret",
		Internal: "hidden",
	}

	js, err := json.Marshal(s)
	if err != nil {
		fmt.Fprintf(w, "  json error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "  json: %s\n", js) // map keys are sorted by encoding/json

	ys, err := yaml.Marshal(s)
	if err != nil {
		fmt.Fprintf(w, "  yaml error: %v\n", err)
		return
	}
	fmt.Fprintln(w, "  yaml:")
	for _, line := range strings.Split(strings.TrimRight(string(ys), "\n"), "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}

	var decoded Server
	src := "name: worker\nport: 9000\n"
	if err := yaml.Unmarshal([]byte(src), &decoded); err != nil {
		fmt.Fprintf(w, "  yaml decode error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "  yaml.Unmarshal(%q) → Name=%s Port=%d TLS=%v\n", src, decoded.Name, decoded.Port, decoded.TLS)
}
