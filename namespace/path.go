package namespace

import "strings"

const pathSep = "/"

// isAbs reports whether p is resolved from the root rather than the cursor.
// Surrounding whitespace is ignored, as it is by splitPath.
func isAbs(p string) bool {
	return strings.HasPrefix(strings.TrimSpace(p), pathSep)
}

// splitPath trims p and returns its non-empty segments, each trimmed of
// surrounding whitespace, so "/a//b/", "/a/b" and "/a/b /" are equivalent.
func splitPath(p string) []string {
	parts := strings.Split(strings.TrimSpace(p), pathSep)
	segs := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			segs = append(segs, part)
		}
	}
	return segs
}

// splitFilePath splits an absolute file path into its directory segments and
// trailing file name. ok is false when the path has no segments at all.
func splitFilePath(p string) (dir []string, name string, ok bool) {
	segs := splitPath(p)
	if len(segs) == 0 {
		return nil, "", false
	}
	return segs[:len(segs)-1], segs[len(segs)-1], true
}

// walkDirs follows segs down from start, requiring each segment to be a valid,
// existing directory. Nothing is created along the way.
func walkDirs(start *Node, segs []string) (*Node, error) {
	cur := start
	for _, seg := range segs {
		if err := checkChars(seg, ErrInvalidPathCharacter); err != nil {
			return nil, err
		}
		child, ok := cur.GetChild(seg)
		if !ok {
			return nil, ErrPathNotFound
		}
		if !child.IsDir() {
			return nil, ErrNotADirectory
		}
		cur = child
	}
	return cur, nil
}

// lookupChild finds a direct child of dir by its bare name
func lookupChild(dir *Node, name string) (*Node, error) {
	child, ok := dir.GetChild(name)
	if !ok {
		return nil, ErrNoSuchEntry
	}
	return child, nil
}
