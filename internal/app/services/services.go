// Package services contains the business logic between the HTTP controllers
// and the repositories.
//
// Services defined in this package:
//   - AuthService: session-based login, validation and logout for both
//     principal roles
//   - EnrollmentService: the seat-capacity-aware registration workflow
//   - DepartmentService, StudentService, CourseService: catalog CRUD with
//     uniqueness pre-checks
package services
