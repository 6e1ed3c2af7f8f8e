package cli

const aboutText = `About
  Khanathip Thandee (Peet), web developer and UI/UX designer with more
  than three years of experience building web applications.

  Principles
    User-Centered        users come first
    Clean Code           code that is clean and easy to maintain
    Continuous Learning  keep learning new technology
`

const servicesText = `Services
  UI/UX Design           beautiful, intuitive interfaces, from wireframes to final designs
  Web Development        full-stack web applications built with modern technologies
  App Development        native and cross-platform mobile applications for iOS and Android
  Digital Consulting     strategic guidance for the digital landscape
  Support & Maintenance  ongoing support to keep digital products running smoothly
  Data Analytics         turning data into actionable insights

  Process
    1. Discovery         understand goals, challenges and requirements
    2. Strategy          a plan tailored to your needs
    3. Design & Build    create the solution with attention to detail
    4. Launch & Support  deploy and keep supporting the project

Use 'contact' to send us a message.
`
