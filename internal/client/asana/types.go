package asana

type TasksResponse struct {
	Data     []AsanaTask `json:"data"`
	NextPage *NextPage   `json:"next_page"`
}

type NextPage struct {
	Offset string `json:"offset"`
}

type AsanaTask struct {
	Gid          string             `json:"gid"`
	Completed    bool               `json:"completed"`
	CreatedAt    string             `json:"created_at"`
	Assignee     *AsanaAssignee     `json:"assignee"`
	CustomFields []AsanaCustomField `json:"custom_fields"`
}

type AsanaAssignee struct {
	Gid  string `json:"gid"`
	Name string `json:"name"`
}

type AsanaCustomField struct {
	Gid          string `json:"gid"`
	Name         string `json:"name"`
	DisplayValue string `json:"display_value"`
}

type AsanaDetailError struct {
	Message string `json:"message"`
	Help    string `json:"help"`
}

type AsanaErrors struct {
	Errors []AsanaDetailError `json:"errors"`
}
