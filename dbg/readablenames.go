package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys into random readable names. It flagrantly leaks
// memory but generates the names lazily, so it's not a problem unless you're
// actually printing things. This is helpful for telling apart regions and
// candidates that only differ deep inside their rational coordinates.

var (
	memo   map[string]string
	memoMu sync.Mutex
)

func init() {
	memo = make(map[string]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(key string) string {
	if key == "" {
		return "Ø"
	}
	memoMu.Lock()
	defer memoMu.Unlock()

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
