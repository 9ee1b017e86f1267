package domain

// Campus represents a university campus.
type Campus struct {
	CampusID   string `json:"campusID"`
	CampusName string `json:"campusName"`
	CampusCode string `json:"campusCode"`
	Location   string `json:"location,omitempty"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}

// CampusView is a Campus with aggregate membership counts.
type CampusView struct {
	Campus
	TotalDepartments int `json:"totalDepartments"`
	TotalUsers       int `json:"totalUsers"`
}

// Department represents an academic or administrative department.
type Department struct {
	DepartmentID     string  `json:"departmentID"`
	DepartmentName   string  `json:"departmentName"`
	DepartmentCode   string  `json:"departmentCode"`
	CampusID         *string `json:"campusID,omitempty"`
	DepartmentHeadID *string `json:"departmentHeadID,omitempty"`
	IsActive         bool    `json:"isActive"`
	AuditFields
}

// DepartmentView is a Department joined with campus/head names and member counts.
type DepartmentView struct {
	Department
	CampusName         string `json:"campusName,omitempty"`
	CampusLocation     string `json:"campusLocation,omitempty"`
	DepartmentHeadName string `json:"departmentHeadName,omitempty"`
	TotalMembers       int    `json:"totalMembers"`
	TotalEmployees     int    `json:"totalEmployees"`
	TotalStudents      int    `json:"totalStudents"`
}
