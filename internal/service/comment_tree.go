package service

import "aventra/internal/models"

const guestName = "Guest"

// BuildCommentTree turns the flat, creation-ordered comment rows of one post
// into a reply forest. Every row appears exactly once and siblings keep
// input order. A reply goes under its parent whenever the parent is among
// rows, unless that link would close a cycle; missing parents and cycle
// breakers are promoted to the root list.
func BuildCommentTree(rows []models.CommentRow) []*models.CommentNode {
	nodes := make(map[int64]*models.CommentNode, len(rows))
	for _, row := range rows {
		author := guestName
		if row.Username != nil && *row.Username != "" {
			author = *row.Username
		}

		nodes[row.ID] = &models.CommentNode{
			Comment: row.Comment,
			Author:  author,
			Likes:   row.Likes,
			Replies: []*models.CommentNode{},
		}
	}

	// parentOf holds only the links accepted so far.
	parentOf := make(map[int64]int64, len(rows))
	closesCycle := func(child, parent int64) bool {
		for cur, ok := parent, true; ok; cur, ok = parentOf[cur] {
			if cur == child {
				return true
			}
		}
		return false
	}

	roots := []*models.CommentNode{}
	for _, row := range rows {
		node := nodes[row.ID]

		if row.ParentCommentID != nil {
			pid := *row.ParentCommentID
			if parent, ok := nodes[pid]; ok && !closesCycle(row.ID, pid) {
				parent.Replies = append(parent.Replies, node)
				parentOf[row.ID] = pid
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}
