package tree

// CountNodes counts n and every node below it.
func CountNodes(n Node) int {
	d, ok := AsDirectory(n)
	if !ok {
		if n == nil || isNilNode(n) {
			return 0
		}
		return 1
	}
	count := 1
	for _, child := range d.children {
		count += CountNodes(child)
	}
	return count
}

// CountFiles counts the files at or below n.
func CountFiles(n Node) int {
	switch v := n.(type) {
	case *File:
		if v == nil {
			return 0
		}
		return 1
	case *Directory:
		if v == nil {
			return 0
		}
		count := 0
		for _, child := range v.children {
			count += CountFiles(child)
		}
		return count
	}
	return 0
}
