package resume

// skillVocabulary is the fixed matching vocabulary. Detected skills are
// reported in this order, regardless of where they appear in the document.
var skillVocabulary = []string{
	"javascript", "python", "java", "react", "node.js", "html", "css", "sql",
	"machine learning", "data analysis", "tensorflow", "pytorch", "git",
	"docker", "kubernetes", "aws", "azure", "mongodb", "postgresql",
	"express", "angular", "vue", "typescript", "c++", "c#", "php", "ruby",
	"go", "rust", "swift", "kotlin", "flutter", "react native",
}
