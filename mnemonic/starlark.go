package mnemonic

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ParseStarlark evaluates a Starlark table definition.
//
// The script must bind the global DISPATCH to a list (or tuple) of strings,
// which becomes the table in order. src is anything accepted by
// starlark.ExecFileOptions: a string, []byte or io.Reader.
func ParseStarlark(name string, src any) (tab *Table, err error) {
	thread := &starlark.Thread{Name: name}
	opts := syntax.FileOptions{}

	dict, err := starlark.ExecFileOptions(&opts, thread, name, src, nil)
	if err != nil {
		return
	}

	st_dispatch, ok := dict["DISPATCH"]
	if !ok {
		err = ErrDispatch
		return
	}
	st_list, ok := st_dispatch.(starlark.Indexable)
	if _, is_str := st_dispatch.(starlark.String); !ok || is_str {
		err = ErrDispatch
		return
	}

	tab = &Table{Name: name}
	for n := range st_list.Len() {
		mnemonic, ok := starlark.AsString(st_list.Index(n))
		if !ok {
			return nil, ErrEntry{Name: name, Index: n, Err: ErrEntryType}
		}
		err = validName(mnemonic)
		if err != nil {
			return nil, ErrEntry{Name: name, Index: n, Err: err}
		}
		tab.Names = append(tab.Names, mnemonic)
	}

	if len(tab.Names) == 0 {
		return nil, ErrTableEmpty
	}

	return
}
