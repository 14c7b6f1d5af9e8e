package paperless

import "encoding/json"

// BasicUser is the abbreviated user record embedded in notes.
type BasicUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Note is a note attached to a document.
type Note struct {
	ID      int       `json:"id"`
	Note    string    `json:"note"`
	Created string    `json:"created"`
	User    BasicUser `json:"user"`
}

// CustomFieldInstance is a custom field value set on a document.
type CustomFieldInstance struct {
	Value any `json:"value"`
	Field int `json:"field"`
}

// CustomField is a global custom field definition.
type CustomField struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	DataType      string          `json:"data_type"`
	ExtraData     json.RawMessage `json:"extra_data,omitempty"`
	DocumentCount int             `json:"document_count"`
}

// Document is a Paperless document record.
type Document struct {
	ID                  int                   `json:"id"`
	Correspondent       *int                  `json:"correspondent"`
	DocumentType        *int                  `json:"document_type"`
	StoragePath         *int                  `json:"storage_path"`
	Title               string                `json:"title"`
	Content             string                `json:"content,omitempty"`
	Tags                []int                 `json:"tags"`
	Created             string                `json:"created,omitempty"`
	Modified            string                `json:"modified"`
	Added               string                `json:"added"`
	DeletedAt           *string               `json:"deleted_at,omitempty"`
	ArchiveSerialNumber *int                  `json:"archive_serial_number,omitempty"`
	OriginalFileName    string                `json:"original_file_name,omitempty"`
	ArchivedFileName    string                `json:"archived_file_name,omitempty"`
	Owner               *int                  `json:"owner"`
	Permissions         json.RawMessage       `json:"permissions,omitempty"`
	UserCanChange       *bool                 `json:"user_can_change,omitempty"`
	IsSharedByRequester *bool                 `json:"is_shared_by_requester,omitempty"`
	Notes               []Note                `json:"notes,omitempty"`
	CustomFields        []CustomFieldInstance `json:"custom_fields,omitempty"`
	PageCount           *int                  `json:"page_count,omitempty"`
	MimeType            string                `json:"mime_type,omitempty"`
}

// Correspondent is a Paperless correspondent record.
type Correspondent struct {
	ID                 int             `json:"id,omitempty"`
	Slug               string          `json:"slug,omitempty"`
	Name               string          `json:"name"`
	Match              string          `json:"match"`
	MatchingAlgorithm  int             `json:"matching_algorithm"`
	IsInsensitive      bool            `json:"is_insensitive"`
	DocumentCount      *int            `json:"document_count,omitempty"`
	LastCorrespondence *string         `json:"last_correspondence,omitempty"`
	Owner              *int            `json:"owner,omitempty"`
	Permissions        json.RawMessage `json:"permissions,omitempty"`
	UserCanChange      *bool           `json:"user_can_change,omitempty"`
}

// DocumentType is a Paperless document type record.
type DocumentType struct {
	ID                int             `json:"id,omitempty"`
	Slug              string          `json:"slug,omitempty"`
	Name              string          `json:"name"`
	Match             string          `json:"match"`
	MatchingAlgorithm int             `json:"matching_algorithm"`
	IsInsensitive     bool            `json:"is_insensitive"`
	DocumentCount     *int            `json:"document_count,omitempty"`
	Owner             *int            `json:"owner,omitempty"`
	Permissions       json.RawMessage `json:"permissions,omitempty"`
	UserCanChange     *bool           `json:"user_can_change,omitempty"`
}

// Tag is a Paperless tag record.
type Tag struct {
	ID                int    `json:"id,omitempty"`
	Slug              string `json:"slug,omitempty"`
	Name              string `json:"name"`
	Color             string `json:"color,omitempty"`
	TextColor         string `json:"text_color,omitempty"`
	Match             string `json:"match"`
	MatchingAlgorithm int    `json:"matching_algorithm"`
	IsInsensitive     bool   `json:"is_insensitive"`
	IsInboxTag        bool   `json:"is_inbox_tag"`
	DocumentCount     *int   `json:"document_count,omitempty"`
	Owner             *int   `json:"owner,omitempty"`
	UserCanChange     *bool  `json:"user_can_change,omitempty"`
	Parent            *int   `json:"parent,omitempty"`
	Children          []int  `json:"children,omitempty"`
}
