package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This hands out random readable names, so that dumps say "Mesh [BraveOtter]"
// instead of printing an address. Callers keep the name they were given;
// nothing here remembers what a name was for, so naming an object never keeps
// it alive. Only the names themselves are remembered, to keep them unique.
//
// Names may be requested concurrently, so the set of used names is guarded.

var (
	mu   sync.Mutex
	used map[string]struct{}
)

func init() {
	used = make(map[string]struct{})
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// A name nothing else has been given in this process. Collisions get a
// numeric suffix rather than a retry, so this always terminates.
func NewName() string {
	mu.Lock()
	defer mu.Unlock()
	base := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	r := base
	for i := 2; ; i++ {
		if _, taken := used[r]; !taken {
			break
		}
		r = fmt.Sprintf("%s%d", base, i)
	}
	used[r] = struct{}{}
	return r
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
