package record

// Group is every record that shares a head.
type Group struct {
	Head    string
	Records []Record
}

// Len is the number of instances in the group.
func (g Group) Len() int {
	return len(g.Records)
}

// GroupBy partitions records by head. Groups are returned in the order their head first appears, and the relative
// order of the records in each group is preserved.
func GroupBy(records []Record) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, r := range records {
		if i, ok := index[r.Head]; ok {
			groups[i].Records = append(groups[i].Records, r)
			continue
		}
		index[r.Head] = len(groups)
		groups = append(groups, Group{
			Head:    r.Head,
			Records: []Record{r},
		})
	}
	return groups
}
