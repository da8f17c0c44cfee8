// Package deps checks that the external executables oggify shells out to are
// installed and usable.
package deps
