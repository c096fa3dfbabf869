package parser

import "fmt"

// DocumentStats contains statistical information about a document
type DocumentStats struct {
	PathCount            int // Number of paths defined
	OperationCount       int // Total number of operations across all paths
	TaggedOperationCount int // Operations carrying at least one tag
	SchemaCount          int // Number of components/schemas entries
}

// GetDocumentStats returns statistics for a parsed document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}
	stats.PathCount = len(doc.Paths)
	for _, op := range doc.Operations() {
		stats.OperationCount++
		if len(op.Tags) > 0 {
			stats.TaggedOperationCount++
		}
	}
	stats.SchemaCount = len(doc.ComponentNames("schemas"))
	return stats
}

// FormatBytes formats a byte count with binary units (KiB, MiB, ...).
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
