package tree

const sampleProjectTSX = `const [isModalOpen, setIsModalOpen] = useState(false);
const [unsavedChanges, setUnsavedChanges] = useState<UnsavedChanges>({});`

// Sample is the starter project opened when no tree file is given.
func Sample() *Tree {
	t, err := NewBuilder().
		File("README.md", "# My Project").
		Dir("src", func(b *Builder) {
			b.File("manage.py", `print("Hello")`)
			b.File("requirements.txt", "django==4.2\npsycopg2-binary==2.9.6")
			b.Dir("app", func(b *Builder) {
				b.File("project.tsx", sampleProjectTSX)
			})
		}).
		Tree()
	if err != nil {
		panic(err)
	}
	return t
}

// SampleExpanded is the explorer state the sample project opens with.
func SampleExpanded() *ExpansionSet {
	return NewExpansionSet("src")
}
