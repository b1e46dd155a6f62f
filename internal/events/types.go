package events

// Asset Event Types
const (
	FolderCreated = "FOLDER_CREATED"
	FolderRenamed = "FOLDER_RENAMED"
	FolderDeleted = "FOLDER_DELETED"

	FileUploaded = "FILE_UPLOADED"
	FileRenamed  = "FILE_RENAMED"
	FileDeleted  = "FILE_DELETED"
)

// Kafka Topics
const (
	AssetChangesTopic = "asset.changes"
)

// Asset Types
const (
	AssetTypeFolder = "folder"
	AssetTypeFile   = "file"
)
