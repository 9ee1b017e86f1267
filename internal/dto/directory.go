package dto

import "github.com/campuskit/university_portal_app/internal/core/domain"

// CampusesResponse wraps the campus directory listing.
type CampusesResponse struct {
	Campuses []CampusResponse `json:"campuses"`
}

// CampusResponse is one campus with aggregate counts.
type CampusResponse struct {
	CampusID         string `json:"campusId"`
	CampusName       string `json:"campusName"`
	CampusCode       string `json:"campusCode"`
	Location         string `json:"location,omitempty"`
	TotalDepartments int    `json:"totalDepartments"`
	TotalUsers       int    `json:"totalUsers"`
}

// ToCampusesResponse converts campus views to the directory DTO.
func ToCampusesResponse(campuses []domain.CampusView) CampusesResponse {
	out := make([]CampusResponse, len(campuses))
	for i, c := range campuses {
		out[i] = CampusResponse{
			CampusID:         c.CampusID,
			CampusName:       c.CampusName,
			CampusCode:       c.CampusCode,
			Location:         c.Location,
			TotalDepartments: c.TotalDepartments,
			TotalUsers:       c.TotalUsers,
		}
	}
	return CampusesResponse{Campuses: out}
}

// DepartmentsResponse wraps the department directory listing.
type DepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// DepartmentResponse is one department with joined names and counts.
type DepartmentResponse struct {
	DepartmentID       string `json:"departmentId"`
	DepartmentName     string `json:"departmentName"`
	DepartmentCode     string `json:"departmentCode"`
	CampusName         string `json:"campusName,omitempty"`
	CampusLocation     string `json:"campusLocation,omitempty"`
	DepartmentHeadName string `json:"departmentHeadName,omitempty"`
	TotalMembers       int    `json:"totalMembers"`
	TotalEmployees     int    `json:"totalEmployees"`
	TotalStudents      int    `json:"totalStudents"`
}

// ToDepartmentsResponse converts department views to the directory DTO.
func ToDepartmentsResponse(departments []domain.DepartmentView) DepartmentsResponse {
	out := make([]DepartmentResponse, len(departments))
	for i, d := range departments {
		out[i] = DepartmentResponse{
			DepartmentID:       d.DepartmentID,
			DepartmentName:     d.DepartmentName,
			DepartmentCode:     d.DepartmentCode,
			CampusName:         d.CampusName,
			CampusLocation:     d.CampusLocation,
			DepartmentHeadName: d.DepartmentHeadName,
			TotalMembers:       d.TotalMembers,
			TotalEmployees:     d.TotalEmployees,
			TotalStudents:      d.TotalStudents,
		}
	}
	return DepartmentsResponse{Departments: out}
}
