package ports

// TrashPort relocates a path to a recoverable trash location. The move
// either fully succeeds or fails from the caller's perspective; no
// partial state is observable on error.
type TrashPort interface {
	MoveToTrash(path string) error
}
