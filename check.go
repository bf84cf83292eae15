package xmlemit

import "strings"

// CheckComment reports whether text can be written as an XML comment.
// Comments may not contain "--" and may not end with "-".
func CheckComment(text string) error {
	if strings.Contains(text, "--") || strings.HasSuffix(text, "-") {
		return ErrCommentContent
	}
	return nil
}

// CheckCData reports whether text can be written as a CDATA section.
// CDATA may not contain the terminator "]]>".
func CheckCData(text string) error {
	if strings.Contains(text, "]]>") {
		return ErrCDataContent
	}
	return nil
}

// CheckProcInst reports whether target and content form a writable
// processing instruction. The target "xml" is reserved in any case
// combination, and content may not contain "?>".
func CheckProcInst(target, content string) error {
	if strings.EqualFold(target, "xml") {
		return ErrReservedPITarget
	}
	if strings.Contains(content, "?>") {
		return ErrPIContent
	}
	return nil
}
