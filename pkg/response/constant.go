package response

// MessageSuccess is the message returned on successful responses.
const MessageSuccess = "Success"
