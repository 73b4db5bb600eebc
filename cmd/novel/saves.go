package main

import (
	"fmt"

	"github.com/reusee/novel/saves"
)

func listSavesCmd(
	store *saves.Store,
) error {
	names, err := store.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Printf("%s/ directory empty\n", store.Dir)
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func deleteSaveCmd(
	store *saves.Store,
) error {
	// exact names only, a fuzzy match must never pick the file to remove
	name := *deleteName
	if err := store.Delete(name); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", name)
	return nil
}
