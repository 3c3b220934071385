package loader

import "github.com/budymann/OODesign/internal/files/tree"

// Demo returns the sample tree:
//
//	/
//	├── examples
//	│   ├── learn
//	│   │   ├── book1.pdf (10 bytes)
//	│   │   └── book2.pdf (20 bytes)
//	│   ├── f1.xml
//	│   └── f2.xml
//	├── josh
//	│   └── hello.java
//	└── test.png
func Demo() *tree.Directory {
	return tree.NewDirectory("",
		tree.NewDirectory("examples",
			tree.NewDirectory("learn",
				tree.NewFile("book1", "pdf", 10, nil),
				tree.NewFile("book2", "pdf", 20, nil),
			),
			tree.NewFile("f1", "xml", 0, nil),
			tree.NewFile("f2", "xml", 0, nil),
		),
		tree.NewDirectory("josh",
			tree.NewFile("hello", "java", 0, nil),
		),
		tree.NewFile("test", "png", 0, nil),
	)
}
