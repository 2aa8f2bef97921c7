package console

const (
	msgInvalidCredentials = "Invalid credentials."
	msgAlreadySubmitted   = "You have already submitted feedback for this form."
	msgInvalidEmail       = "Invalid Email."
	msgThanks             = "Thank you!"
	msgSaved              = "Saved successfully."
	msgLoginRequired      = "Please log in first."
	msgAdminRequired      = "Admin access required."
	msgNoSuchForm         = "No such form."
	msgNoSuchUser         = "No such user."
	msgUserExists         = "User already exists."
	msgCleared            = "All feedback deleted."
	msgNoFeedback         = "No feedback yet."
)

const helpText = `Commands:
  login <admin|user> <username> <password>
  logout
  forms
  submit <form#> | <email> [| <Category=n, ...> [| <comments>]]
  help
  quit
Admin commands:
  users
  adduser <username> <password> <ADMIN|USER>
  deluser <username>
  passwd <username> <new password>
  addform <title> | <description> | <category, category, ...>
  delform <form#>
  feedback <form#> [name filter]
  export [path]
  clear
`
